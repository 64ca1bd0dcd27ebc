package driver

import (
	"strconv"

	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// updateStatusRequest 状态更新请求
type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// reportIssueRequest 异常上报请求
type reportIssueRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListAssigned 查询指派给当前司机的配送单
func (h *Handler) ListAssigned(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderRepo.ListByDriver(driverID, repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询配送单失败", err)
		return
	}
	response.SuccessWithPage(c, orders, shared.BuildPagination(page, pageSize, total))
}

// GetStatus 查询订单配送状态
func (h *Handler) GetStatus(c *gin.Context) {
	order, err := h.DeliveryService.GetOrderStatus(c.Param("order_no"))
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateStatus 更新订单配送状态
func (h *Handler) UpdateStatus(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	order, err := h.DeliveryService.UpdateOrderStatus(c.Param("order_no"), req.Status, &driverID)
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, order)
}

// Start 开始配送
func (h *Handler) Start(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	order, err := h.DeliveryService.StartDelivery(c.Param("order_no"), &driverID)
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, order)
}

// Complete 完成配送
func (h *Handler) Complete(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	order, err := h.DeliveryService.CompleteDelivery(c.Param("order_no"), &driverID)
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, order)
}

// ReportIssue 上报配送异常
func (h *Handler) ReportIssue(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	var req reportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	order, err := h.DeliveryService.ReportIssue(c.Param("order_no"), req.Reason, &driverID)
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, order)
}

// ListCompleted 查询当前司机的完成记录
func (h *Handler) ListCompleted(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	records, total, err := h.DeliveryService.GetCompletedDeliveries(repository.CompletedListFilter{
		Page:     page,
		PageSize: pageSize,
		DriverID: driverID,
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询完成记录失败", err)
		return
	}
	response.SuccessWithPage(c, records, shared.BuildPagination(page, pageSize, total))
}
