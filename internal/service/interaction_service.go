package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
)

// InteractionService 文章互动服务：点赞、收藏、浏览
type InteractionService struct {
	db *gorm.DB
}

// NewInteractionService 创建互动服务
func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{db: db}
}

// ToggleLike 切换点赞状态，返回切换后的状态和计数
// 点赞记录表是唯一事实来源，文章上的计数在同一事务内维护
func (s *InteractionService) ToggleLike(userID, articleID uint) (bool, int, error) {
	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var article model.Article
		if err := tx.First(&article, articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		var existing model.ArticleLike
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error
		switch {
		case err == nil:
			// 已点赞，取消
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&model.Article{}).
				Where("id = ? AND like_count > 0", articleID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := &model.ArticleLike{UserID: userID, ArticleID: articleID}
			if err := tx.Create(like).Error; err != nil {
				// 并发下重复插入视为已点赞
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					liked = true
					return nil
				}
				return err
			}
			liked = true
			return tx.Model(&model.Article{}).
				Where("id = ?", articleID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return false, 0, err
		}
		return false, 0, fmt.Errorf("切换点赞失败: %w", err)
	}

	count, err := s.likeCount(articleID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

// ToggleBookmark 切换收藏状态，返回切换后的状态和计数
func (s *InteractionService) ToggleBookmark(userID, articleID uint) (bool, int, error) {
	var bookmarked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var article model.Article
		if err := tx.First(&article, articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		var existing model.Bookmark
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&model.Article{}).
				Where("id = ? AND bookmark_count > 0", articleID).
				UpdateColumn("bookmark_count", gorm.Expr("bookmark_count - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			bookmark := &model.Bookmark{UserID: userID, ArticleID: articleID}
			if err := tx.Create(bookmark).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					bookmarked = true
					return nil
				}
				return err
			}
			bookmarked = true
			return tx.Model(&model.Article{}).
				Where("id = ?", articleID).
				UpdateColumn("bookmark_count", gorm.Expr("bookmark_count + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return false, 0, err
		}
		return false, 0, fmt.Errorf("切换收藏失败: %w", err)
	}

	count, err := s.bookmarkCount(articleID)
	if err != nil {
		return bookmarked, 0, err
	}
	return bookmarked, count, nil
}

// RecordView 记录用户浏览，同一用户重复浏览不增加计数
// 首次浏览时同步写入一条阅读历史
func (s *InteractionService) RecordView(userID, articleID uint) (int, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var article model.Article
		if err := tx.First(&article, articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		view := &model.ArticleView{UserID: userID, ArticleID: articleID}
		if err := tx.Create(view).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}

		history := &model.ReadingHistory{
			UserID:    userID,
			ArticleID: articleID,
			ReadAt:    time.Now(),
		}
		if err := tx.Create(history).Error; err != nil {
			return err
		}

		return tx.Model(&model.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("记录浏览失败: %w", err)
	}

	var article model.Article
	if err := s.db.Select("view_count").First(&article, articleID).Error; err != nil {
		return 0, fmt.Errorf("查询浏览数失败: %w", err)
	}
	return article.ViewCount, nil
}

// GetUserBookmarks 分页查询用户收藏的文章，按收藏时间倒序
func (s *InteractionService) GetUserBookmarks(userID uint, page, size int) (*dto.ArticleListResponse, error) {
	var total int64
	if err := s.db.Model(&model.Bookmark{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计收藏失败: %w", err)
	}

	var articles []*model.Article
	err := s.db.Model(&model.Article{}).
		Joins("JOIN bookmarks ON bookmarks.article_id = articles.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Preload("Author").Preload("Tags").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("查询收藏列表失败: %w", err)
	}
	return &dto.ArticleListResponse{Total: total, List: articles}, nil
}

func (s *InteractionService) likeCount(articleID uint) (int, error) {
	var article model.Article
	if err := s.db.Select("like_count").First(&article, articleID).Error; err != nil {
		return 0, fmt.Errorf("查询点赞数失败: %w", err)
	}
	return article.LikeCount, nil
}

func (s *InteractionService) bookmarkCount(articleID uint) (int, error) {
	var article model.Article
	if err := s.db.Select("bookmark_count").First(&article, articleID).Error; err != nil {
		return 0, fmt.Errorf("查询收藏数失败: %w", err)
	}
	return article.BookmarkCount, nil
}
