package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
)

// ReadingHistoryService 阅读历史服务
type ReadingHistoryService struct {
	db *gorm.DB
}

// NewReadingHistoryService 创建阅读历史服务
func NewReadingHistoryService(db *gorm.DB) *ReadingHistoryService {
	return &ReadingHistoryService{db: db}
}

// GetUserReadingHistory 分页查询用户阅读历史，按阅读时间倒序
func (s *ReadingHistoryService) GetUserReadingHistory(userID uint, page, size int) (*dto.ReadingHistoryListResponse, error) {
	var total int64
	if err := s.db.Model(&model.ReadingHistory{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计阅读历史失败: %w", err)
	}

	var histories []model.ReadingHistory
	err := s.db.Preload("Article").Preload("Article.Author").
		Where("user_id = ?", userID).
		Order("read_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("查询阅读历史失败: %w", err)
	}

	list := make([]dto.ReadingHistoryItem, 0, len(histories))
	for i := range histories {
		h := &histories[i]
		list = append(list, dto.ReadingHistoryItem{
			ID:           h.ID,
			ArticleID:    h.ArticleID,
			ArticleTitle: h.Article.Title,
			AuthorID:     h.Article.AuthorID,
			AuthorName:   h.Article.Author.FullName,
			ReadAt:       h.ReadAt.Format(time.RFC3339),
		})
	}
	return &dto.ReadingHistoryListResponse{Total: total, List: list}, nil
}
