package dto

import (
	"github.com/inkwave/inkwave-api/internal/model"
)

// ArticleCreateRequest 创建文章请求
type ArticleCreateRequest struct {
	Title   string   `json:"title" binding:"required,min=1,max=255"`
	Content string   `json:"content" binding:"required,min=1"`
	Tags    []string `json:"tags" binding:"omitempty,max=10,dive,min=1,max=50"`
	Status  string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// ArticleUpdateRequest 更新文章请求
type ArticleUpdateRequest struct {
	Title   string   `json:"title" binding:"omitempty,min=1,max=255"`
	Content string   `json:"content" binding:"omitempty,min=1"`
	Tags    []string `json:"tags" binding:"omitempty,max=10,dive,min=1,max=50"`
	Status  string   `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// ArticleListResponse 文章列表响应
type ArticleListResponse struct {
	Total int64            `json:"total"`
	List  []*model.Article `json:"list"`
}

// ToggleResponse 点赞/收藏切换结果
type ToggleResponse struct {
	Active bool `json:"active"` // 切换后是否处于点赞/收藏状态
	Count  int  `json:"count"`  // 切换后的计数
}
