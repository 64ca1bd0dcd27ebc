package admin

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/repository"
	"github.com/fleettrack/internal/service"

	"github.com/gin-gonic/gin"
)

// assignOrderRequest 指派司机请求，driver_id 为空表示取消指派
type assignOrderRequest struct {
	DriverID *uint `json:"driver_id"`
}

// ListOrders 查询配送订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	orders, total, err := h.OrderAdminService.List(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		DriverID:    parseUintQuery(c, "driver_id"),
		Status:      c.Query("status"),
		OrderNo:     c.Query("order_no"),
		Search:      c.Query("search"),
		CreatedFrom: parseTimeQuery(c, "created_from"),
		CreatedTo:   parseTimeQuery(c, "created_to"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询订单失败", err)
		return
	}
	response.SuccessWithPage(c, orders, shared.BuildPagination(page, pageSize, total))
}

// GetOrder 获取配送订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的订单 ID", nil)
		return
	}
	order, err := h.OrderAdminService.Get(id)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, order)
}

// CreateOrder 创建配送订单
func (h *Handler) CreateOrder(c *gin.Context) {
	var input service.OrderCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	order, err := h.OrderAdminService.Create(input)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateOrder 更新配送订单
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的订单 ID", nil)
		return
	}
	var input service.OrderUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	order, err := h.OrderAdminService.Update(id, input)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, order)
}

// AssignOrder 指派或取消指派司机
func (h *Handler) AssignOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的订单 ID", nil)
		return
	}
	var req assignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	order, err := h.OrderAdminService.Assign(id, req.DriverID)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除配送订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的订单 ID", nil)
		return
	}
	if err := h.OrderAdminService.Delete(id); err != nil {
		respondOrderAdminError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetOrderNotes 查询订单备注（含附件）
func (h *Handler) GetOrderNotes(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的订单 ID", nil)
		return
	}
	order, err := h.OrderAdminService.Get(id)
	if err != nil {
		respondOrderAdminError(c, err)
		return
	}
	notes, err := h.DeliveryService.GetOrderNotes(order.OrderNo)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询备注失败", err)
		return
	}
	response.Success(c, notes)
}
