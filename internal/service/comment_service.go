package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
)

var (
	// ErrCommentNotFound 评论不存在
	ErrCommentNotFound = errors.New("comment not found")
	// ErrParentMismatch 父评论不属于该文章
	ErrParentMismatch = errors.New("parent comment belongs to a different article")
	// ErrReplyTooDeep 回复层级超出限制
	ErrReplyTooDeep = errors.New("reply nesting too deep")
)

// CommentService 评论服务
type CommentService struct {
	db            *gorm.DB
	maxReplyDepth int
}

// NewCommentService 创建评论服务，maxReplyDepth为1时只允许回复顶层评论
func NewCommentService(db *gorm.DB, maxReplyDepth int) *CommentService {
	if maxReplyDepth < 1 {
		maxReplyDepth = 1
	}
	return &CommentService{db: db, maxReplyDepth: maxReplyDepth}
}

// Create 发表评论或回复，同一事务内维护文章评论数
func (s *CommentService) Create(userID, articleID uint, req *dto.CommentCreateRequest) (*model.Comment, error) {
	comment := &model.Comment{
		Content:   req.Content,
		ArticleID: articleID,
		UserID:    userID,
		ParentID:  req.ParentID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var article model.Article
		if err := tx.First(&article, articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		if req.ParentID != nil {
			if err := s.checkParent(tx, articleID, *req.ParentID); err != nil {
				return err
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) || errors.Is(err, ErrCommentNotFound) ||
			errors.Is(err, ErrParentMismatch) || errors.Is(err, ErrReplyTooDeep) {
			return nil, err
		}
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	var created model.Comment
	if err := s.db.Preload("User").First(&created, comment.ID).Error; err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	return &created, nil
}

// checkParent 校验父评论存在、属于同一篇文章且未超出嵌套层级
func (s *CommentService) checkParent(tx *gorm.DB, articleID, parentID uint) error {
	depth := 0
	currentID := parentID
	for {
		var parent model.Comment
		if err := tx.First(&parent, currentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		if depth == 0 && parent.ArticleID != articleID {
			return ErrParentMismatch
		}

		depth++
		if parent.ParentID == nil {
			break
		}
		currentID = *parent.ParentID
	}

	if depth > s.maxReplyDepth {
		return ErrReplyTooDeep
	}
	return nil
}

// ListByArticle 查询文章的全部评论，顶层和回复均按创建时间倒序
func (s *CommentService) ListByArticle(articleID uint) (*dto.CommentListResponse, error) {
	var exists int64
	if err := s.db.Model(&model.Article{}).Where("id = ?", articleID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if exists == 0 {
		return nil, ErrArticleNotFound
	}

	var comments []*model.Comment
	err := s.db.Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}

	tree := buildCommentTree(comments)
	return &dto.CommentListResponse{Total: int64(len(comments)), List: tree}, nil
}

// Like 评论点赞，仅累加计数
func (s *CommentService) Like(commentID uint) (int, error) {
	result := s.db.Model(&model.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("like_count", gorm.Expr("like_count + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("评论点赞失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrCommentNotFound
	}

	var comment model.Comment
	if err := s.db.Select("like_count").First(&comment, commentID).Error; err != nil {
		return 0, fmt.Errorf("查询评论失败: %w", err)
	}
	return comment.LikeCount, nil
}

// buildCommentTree 将平铺的评论组装为顶层评论+回复的两级结构
// 输入已按创建时间倒序，组装后各层保持该顺序
func buildCommentTree(comments []*model.Comment) []*model.Comment {
	byID := make(map[uint]*model.Comment, len(comments))
	for _, c := range comments {
		c.Replies = []*model.Comment{}
		byID[c.ID] = c
	}

	roots := make([]*model.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	return roots
}
