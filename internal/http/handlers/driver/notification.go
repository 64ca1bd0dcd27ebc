package driver

import (
	"strconv"

	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListNotifications 查询与当前司机相关的配送事件通知
func (h *Handler) ListNotifications(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	notifications, total, err := h.NotificationService.List(repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		DriverID:   driverID,
		Event:      c.Query("event"),
		UnreadOnly: c.Query("unread_only") == "true",
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询通知失败", err)
		return
	}
	response.SuccessWithPage(c, notifications, shared.BuildPagination(page, pageSize, total))
}
