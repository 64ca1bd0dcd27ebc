package admin

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// markReadRequest 标记已读请求
type markReadRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// ListNotifications 查询配送事件通知列表
func (h *Handler) ListNotifications(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	notifications, total, err := h.NotificationService.List(repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		Event:      c.Query("event"),
		OrderNo:    c.Query("order_no"),
		DriverID:   parseUintQuery(c, "driver_id"),
		UnreadOnly: c.Query("unread_only") == "true",
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询通知失败", err)
		return
	}
	response.SuccessWithPage(c, notifications, shared.BuildPagination(page, pageSize, total))
}

// MarkNotificationsRead 批量标记通知已读
func (h *Handler) MarkNotificationsRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	if err := h.NotificationService.MarkRead(req.IDs); err != nil {
		shared.RespondError(c, response.CodeInternal, "标记已读失败", err)
		return
	}
	response.Success(c, nil)
}

// CountUnreadNotifications 未读通知数量
func (h *Handler) CountUnreadNotifications(c *gin.Context) {
	count, err := h.NotificationService.CountUnread()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询未读数量失败", err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}
