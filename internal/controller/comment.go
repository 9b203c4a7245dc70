package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/middleware"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/response"
)

// CommentController 评论控制器
type CommentController struct {
	commentService *service.CommentService
}

// NewCommentController 创建评论控制器
func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create 发表评论或回复
func (ctl *CommentController) Create(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	userID := middleware.GetUserID(c)
	comment, err := ctl.commentService.Create(userID, articleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			response.NotFound(c, "Article not found", err)
		case errors.Is(err, service.ErrCommentNotFound):
			response.NotFound(c, "Parent comment not found", err)
		case errors.Is(err, service.ErrParentMismatch):
			response.BadRequest(c, "Parent comment belongs to a different article", err)
		case errors.Is(err, service.ErrReplyTooDeep):
			response.BadRequest(c, "Reply nesting too deep", err)
		default:
			response.InternalServerError(c, "Failed to create comment", err)
		}
		return
	}
	response.Success(c, "Comment created", comment)
}

// List 文章评论列表，顶层评论携带回复
func (ctl *CommentController) List(c *gin.Context) {
	articleID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid article id", err)
		return
	}

	result, err := ctl.commentService.ListByArticle(articleID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, "Article not found", err)
			return
		}
		response.InternalServerError(c, "Failed to list comments", err)
		return
	}
	response.Success(c, "OK", result)
}

// Like 评论点赞
func (ctl *CommentController) Like(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid comment id", err)
		return
	}

	count, err := ctl.commentService.Like(commentID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.NotFound(c, "Comment not found", err)
			return
		}
		response.InternalServerError(c, "Failed to like comment", err)
		return
	}
	response.Success(c, "OK", gin.H{"like_count": count})
}
