package dto

import (
	"github.com/inkwave/inkwave-api/internal/model"
)

// CommentCreateRequest 创建评论请求，带parent_id时为回复
type CommentCreateRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=1000"`
	ParentID *uint  `json:"parent_id" binding:"omitempty,gt=0"`
}

// CommentListResponse 评论列表响应，顶层评论各自携带回复
type CommentListResponse struct {
	Total int64            `json:"total"`
	List  []*model.Comment `json:"list"`
}
