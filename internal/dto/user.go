package dto

import (
	"time"

	"github.com/inkwave/inkwave-api/internal/model"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateRequest 用户信息更新请求
type UserUpdateRequest struct {
	FullName string `json:"full_name" binding:"omitempty,min=2,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Avatar   string `json:"avatar" binding:"omitempty,max=255"`
}

// UserBriefInfo 用户简要信息
type UserBriefInfo struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// FollowListResponse 关注/粉丝列表响应
type FollowListResponse struct {
	Total int64           `json:"total"`
	List  []UserBriefInfo `json:"list"`
}

// UserProfileResponse 用户公开资料响应
type UserProfileResponse struct {
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	Avatar         string    `json:"avatar"`
	Role           string    `json:"role"`
	Points         int       `json:"points"`
	CreatedAt      time.Time `json:"created_at"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	ArticleCount   int64     `json:"article_count"`
}

// NewUserBriefInfo 从用户模型构建简要信息
func NewUserBriefInfo(u *model.User) UserBriefInfo {
	return UserBriefInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}
