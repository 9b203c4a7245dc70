package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/middleware"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/response"
)

// ArticleController 文章控制器
type ArticleController struct {
	articleService     *service.ArticleService
	interactionService *service.InteractionService
}

// NewArticleController 创建文章控制器
func NewArticleController(articleService *service.ArticleService, interactionService *service.InteractionService) *ArticleController {
	return &ArticleController{
		articleService:     articleService,
		interactionService: interactionService,
	}
}

// Create 创建文章
func (ctl *ArticleController) Create(c *gin.Context) {
	var req dto.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	userID := middleware.GetUserID(c)
	article, err := ctl.articleService.Create(userID, &req)
	if err != nil {
		response.InternalServerError(c, "Failed to create article", err)
		return
	}
	response.Success(c, "Article created", article)
}

// List 已发布文章列表
func (ctl *ArticleController) List(c *gin.Context) {
	page, size := parsePagination(c)
	result, err := ctl.articleService.List(page, size)
	if err != nil {
		response.InternalServerError(c, "Failed to list articles", err)
		return
	}
	response.SuccessPage(c, "OK", result.List, page, size, result.Total)
}

// Detail 文章详情
func (ctl *ArticleController) Detail(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	article, err := ctl.articleService.GetByID(articleID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, "Article not found", err)
			return
		}
		response.InternalServerError(c, "Failed to load article", err)
		return
	}
	response.Success(c, "OK", article)
}

// Update 更新文章，仅作者本人
func (ctl *ArticleController) Update(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	var req dto.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	userID := middleware.GetUserID(c)
	article, err := ctl.articleService.Update(userID, articleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			response.NotFound(c, "Article not found", err)
		case errors.Is(err, service.ErrNotArticleOwner):
			response.Forbidden(c, "Not the article owner", err)
		default:
			response.InternalServerError(c, "Failed to update article", err)
		}
		return
	}
	response.Success(c, "Article updated", article)
}

// MyArticles 当前用户的文章列表（含草稿）
func (ctl *ArticleController) MyArticles(c *gin.Context) {
	page, size := parsePagination(c)
	userID := middleware.GetUserID(c)

	result, err := ctl.articleService.GetUserArticles(userID, page, size)
	if err != nil {
		response.InternalServerError(c, "Failed to list articles", err)
		return
	}
	response.SuccessPage(c, "OK", result.List, page, size, result.Total)
}

// ToggleLike 点赞/取消点赞
func (ctl *ArticleController) ToggleLike(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	userID := middleware.GetUserID(c)
	liked, count, err := ctl.interactionService.ToggleLike(userID, articleID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, "Article not found", err)
			return
		}
		response.InternalServerError(c, "Failed to toggle like", err)
		return
	}
	response.Success(c, "OK", dto.ToggleResponse{Active: liked, Count: count})
}

// ToggleBookmark 收藏/取消收藏
func (ctl *ArticleController) ToggleBookmark(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	userID := middleware.GetUserID(c)
	bookmarked, count, err := ctl.interactionService.ToggleBookmark(userID, articleID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, "Article not found", err)
			return
		}
		response.InternalServerError(c, "Failed to toggle bookmark", err)
		return
	}
	response.Success(c, "OK", dto.ToggleResponse{Active: bookmarked, Count: count})
}

// RecordView 记录浏览
func (ctl *ArticleController) RecordView(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	userID := middleware.GetUserID(c)
	viewCount, err := ctl.interactionService.RecordView(userID, articleID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, "Article not found", err)
			return
		}
		response.InternalServerError(c, "Failed to record view", err)
		return
	}
	response.Success(c, "OK", gin.H{"view_count": viewCount})
}

// MyBookmarks 当前用户的收藏列表
func (ctl *ArticleController) MyBookmarks(c *gin.Context) {
	page, size := parsePagination(c)
	userID := middleware.GetUserID(c)

	result, err := ctl.interactionService.GetUserBookmarks(userID, page, size)
	if err != nil {
		response.InternalServerError(c, "Failed to list bookmarks", err)
		return
	}
	response.SuccessPage(c, "OK", result.List, page, size, result.Total)
}
