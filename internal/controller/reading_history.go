package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/internal/middleware"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/response"
)

// ReadingHistoryController 阅读历史控制器
type ReadingHistoryController struct {
	readingHistoryService *service.ReadingHistoryService
}

// NewReadingHistoryController 创建阅读历史控制器
func NewReadingHistoryController(readingHistoryService *service.ReadingHistoryService) *ReadingHistoryController {
	return &ReadingHistoryController{readingHistoryService: readingHistoryService}
}

// MyHistory 当前用户的阅读历史
func (ctl *ReadingHistoryController) MyHistory(c *gin.Context) {
	page, size := parsePagination(c)
	userID := middleware.GetUserID(c)

	result, err := ctl.readingHistoryService.GetUserReadingHistory(userID, page, size)
	if err != nil {
		response.InternalServerError(c, "Failed to load reading history", err)
		return
	}
	response.SuccessPage(c, "OK", result.List, page, size, result.Total)
}
