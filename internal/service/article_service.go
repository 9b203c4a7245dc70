package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
)

var (
	// ErrArticleNotFound 文章不存在
	ErrArticleNotFound = errors.New("article not found")
	// ErrNotArticleOwner 只有作者本人可以修改文章
	ErrNotArticleOwner = errors.New("not the article owner")
)

// ArticleService 文章服务
type ArticleService struct {
	db *gorm.DB
}

// NewArticleService 创建文章服务
func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// Create 创建文章，标签不存在时自动创建
func (s *ArticleService) Create(authorID uint, req *dto.ArticleCreateRequest) (*model.Article, error) {
	status := req.Status
	if status == "" {
		status = model.ArticleStatusPublished
	}

	article := &model.Article{
		Title:    req.Title,
		Content:  req.Content,
		Status:   status,
		AuthorID: authorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := s.resolveTags(tx, req.Tags)
		if err != nil {
			return err
		}
		article.Tags = tags
		return tx.Create(article).Error
	})
	if err != nil {
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}
	return s.GetByID(article.ID)
}

// GetByID 按ID查询文章，预加载作者和标签
func (s *ArticleService) GetByID(id uint) (*model.Article, error) {
	var article model.Article
	err := s.db.Preload("Author").Preload("Tags").First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	return &article, nil
}

// List 分页查询已发布文章，按创建时间倒序
func (s *ArticleService) List(page, size int) (*dto.ArticleListResponse, error) {
	query := s.db.Model(&model.Article{}).Where("status = ?", model.ArticleStatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计文章失败: %w", err)
	}

	var articles []*model.Article
	err := s.db.Preload("Author").Preload("Tags").
		Where("status = ?", model.ArticleStatusPublished).
		Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}
	return &dto.ArticleListResponse{Total: total, List: articles}, nil
}

// GetUserArticles 分页查询指定作者的全部文章（含草稿），按创建时间倒序
func (s *ArticleService) GetUserArticles(authorID uint, page, size int) (*dto.ArticleListResponse, error) {
	var total int64
	if err := s.db.Model(&model.Article{}).Where("author_id = ?", authorID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计文章失败: %w", err)
	}

	var articles []*model.Article
	err := s.db.Preload("Tags").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}
	return &dto.ArticleListResponse{Total: total, List: articles}, nil
}

// Update 更新文章，仅作者本人可操作
func (s *ArticleService) Update(userID, articleID uint, req *dto.ArticleUpdateRequest) (*model.Article, error) {
	article, err := s.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != userID {
		return nil, ErrNotArticleOwner
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(article).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Tags != nil {
			tags, err := s.resolveTags(tx, req.Tags)
			if err != nil {
				return err
			}
			if err := tx.Model(article).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("更新文章失败: %w", err)
	}
	return s.GetByID(articleID)
}

// resolveTags 按名称查找或创建标签
func (s *ArticleService) resolveTags(tx *gorm.DB, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, model.Tag{Name: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
