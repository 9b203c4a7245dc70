package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/response"
)

// WaitlistController 候补名单控制器
type WaitlistController struct {
	waitlistService *service.WaitlistService
}

// NewWaitlistController 创建候补名单控制器
func NewWaitlistController(waitlistService *service.WaitlistService) *WaitlistController {
	return &WaitlistController{waitlistService: waitlistService}
}

// Join 加入候补名单
func (ctl *WaitlistController) Join(c *gin.Context) {
	var req dto.WaitlistJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err), err)
		return
	}

	entry, err := ctl.waitlistService.Join(req.FullName, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "Email already registered", err)
			return
		}
		response.InternalServerError(c, "Failed to join waitlist", err)
		return
	}
	response.Success(c, "Joined waitlist", entry)
}

// Count 候补名单人数
func (ctl *WaitlistController) Count(c *gin.Context) {
	count, err := ctl.waitlistService.Count()
	if err != nil {
		response.InternalServerError(c, "Failed to count waitlist", err)
		return
	}
	response.Success(c, "OK", dto.WaitlistCountResponse{Count: count})
}
