package admin

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCompletedDeliveries 查询完成记录列表
func (h *Handler) ListCompletedDeliveries(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	records, total, err := h.DeliveryService.GetCompletedDeliveries(repository.CompletedListFilter{
		Page:          page,
		PageSize:      pageSize,
		DriverID:      parseUintQuery(c, "driver_id"),
		OrderNo:       c.Query("order_no"),
		CompletedFrom: parseTimeQuery(c, "completed_from"),
		CompletedTo:   parseTimeQuery(c, "completed_to"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询完成记录失败", err)
		return
	}
	response.SuccessWithPage(c, records, shared.BuildPagination(page, pageSize, total))
}

// CompletedToday 今日完成配送统计
func (h *Handler) CompletedToday(c *gin.Context) {
	summary, err := h.DeliveryService.GetCompletedToday(c.Request.Context())
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询今日完成统计失败", err)
		return
	}
	response.Success(c, summary)
}
