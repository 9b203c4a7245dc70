package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/internal/middleware"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/response"
)

// UserController 用户控制器：公开资料与关注关系
type UserController struct {
	userService *service.UserService
}

// NewUserController 创建用户控制器
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Profile 用户公开资料
func (ctl *UserController) Profile(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user id", err)
		return
	}

	profile, err := ctl.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found", err)
			return
		}
		response.InternalServerError(c, "Failed to load profile", err)
		return
	}
	response.Success(c, "OK", profile)
}

// Follow 关注用户
func (ctl *UserController) Follow(c *gin.Context) {
	targetID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user id", err)
		return
	}

	userID := middleware.GetUserID(c)
	if err := ctl.userService.Follow(userID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			response.BadRequest(c, "Cannot follow yourself", err)
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found", err)
		default:
			response.InternalServerError(c, "Failed to follow user", err)
		}
		return
	}
	response.Success(c, "Followed", nil)
}

// Unfollow 取消关注
func (ctl *UserController) Unfollow(c *gin.Context) {
	targetID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user id", err)
		return
	}

	userID := middleware.GetUserID(c)
	if err := ctl.userService.Unfollow(userID, targetID); err != nil {
		response.InternalServerError(c, "Failed to unfollow user", err)
		return
	}
	response.Success(c, "Unfollowed", nil)
}

// Followers 粉丝列表
func (ctl *UserController) Followers(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user id", err)
		return
	}

	page, size := parsePagination(c)
	result, err := ctl.userService.GetFollowers(userID, page, size)
	if err != nil {
		response.InternalServerError(c, "Failed to list followers", err)
		return
	}
	response.SuccessPage(c, "OK", result.List, page, size, result.Total)
}

// Following 关注列表
func (ctl *UserController) Following(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user id", err)
		return
	}

	page, size := parsePagination(c)
	result, err := ctl.userService.GetFollowing(userID, page, size)
	if err != nil {
		response.InternalServerError(c, "Failed to list following", err)
		return
	}
	response.SuccessPage(c, "OK", result.List, page, size, result.Total)
}

// CheckFollowing 当前用户是否关注了目标用户
func (ctl *UserController) CheckFollowing(c *gin.Context) {
	targetID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user id", err)
		return
	}

	userID := middleware.GetUserID(c)
	following, err := ctl.userService.IsFollowing(userID, targetID)
	if err != nil {
		response.InternalServerError(c, "Failed to check follow status", err)
		return
	}
	response.Success(c, "OK", gin.H{"following": following})
}
