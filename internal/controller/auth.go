package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/middleware"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/response"
	"github.com/inkwave/inkwave-api/pkg/session"
)

// AuthController 认证控制器
type AuthController struct {
	userService *service.UserService
	store       *session.Store
}

// NewAuthController 创建认证控制器
func NewAuthController(userService *service.UserService, store *session.Store) *AuthController {
	return &AuthController{userService: userService, store: store}
}

// Register 注册新用户并直接建立会话
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	user, err := ctl.userService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "Email already registered", err)
			return
		}
		response.InternalServerError(c, "Registration failed", err)
		return
	}

	if err := ctl.setSessionCookie(c, user.ID); err != nil {
		response.InternalServerError(c, "Registration failed", err)
		return
	}
	response.Success(c, "Registered successfully", user)
}

// Login 登录并下发会话Cookie
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	user, err := ctl.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password", err)
			return
		}
		response.InternalServerError(c, "Login failed", err)
		return
	}

	if err := ctl.setSessionCookie(c, user.ID); err != nil {
		response.InternalServerError(c, "Login failed", err)
		return
	}
	response.Success(c, "Logged in successfully", user)
}

// Logout 销毁会话并清除Cookie
func (ctl *AuthController) Logout(c *gin.Context) {
	if sid, err := c.Cookie(ctl.store.CookieName()); err == nil && sid != "" {
		if err := ctl.store.Destroy(sid); err != nil {
			response.InternalServerError(c, "Logout failed", err)
			return
		}
	}

	c.SetCookie(ctl.store.CookieName(), "", -1, "/", "", ctl.store.CookieSecure(), true)
	response.Success(c, "Logged out successfully", nil)
}

// Me 当前登录用户信息
func (ctl *AuthController) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := ctl.userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found", err)
			return
		}
		response.InternalServerError(c, "Failed to load profile", err)
		return
	}
	response.Success(c, "OK", user)
}

// UpdateMe 更新当前登录用户资料
func (ctl *AuthController) UpdateMe(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	userID := middleware.GetUserID(c)
	user, err := ctl.userService.UpdateProfile(userID, &req)
	if err != nil {
		response.InternalServerError(c, "Failed to update profile", err)
		return
	}
	response.Success(c, "Profile updated", user)
}

func (ctl *AuthController) setSessionCookie(c *gin.Context, userID uint) error {
	sid, err := ctl.store.Create(userID)
	if err != nil {
		return err
	}
	c.SetCookie(ctl.store.CookieName(), sid, ctl.store.MaxAge(), "/", "", ctl.store.CookieSecure(), true)
	return nil
}
