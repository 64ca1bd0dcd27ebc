package admin

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/repository"
	"github.com/fleettrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ListDrivers 查询司机列表
func (h *Handler) ListDrivers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	drivers, total, err := h.DriverService.List(repository.DriverListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询司机失败", err)
		return
	}
	response.SuccessWithPage(c, drivers, shared.BuildPagination(page, pageSize, total))
}

// GetDriver 获取司机详情
func (h *Handler) GetDriver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的司机 ID", nil)
		return
	}
	driver, err := h.DriverService.Get(id)
	if err != nil {
		respondDriverAdminError(c, err)
		return
	}
	response.Success(c, driver)
}

// CreateDriver 创建司机账号
func (h *Handler) CreateDriver(c *gin.Context) {
	var input service.DriverCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	driver, err := h.DriverService.Create(input)
	if err != nil {
		respondDriverAdminError(c, err)
		return
	}
	response.Success(c, driver)
}

// UpdateDriver 更新司机资料或状态
func (h *Handler) UpdateDriver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的司机 ID", nil)
		return
	}
	var input service.DriverUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	driver, err := h.DriverService.Update(id, input)
	if err != nil {
		respondDriverAdminError(c, err)
		return
	}
	response.Success(c, driver)
}

// DeleteDriver 删除司机账号
func (h *Handler) DeleteDriver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的司机 ID", nil)
		return
	}
	if err := h.DriverService.Delete(id); err != nil {
		respondDriverAdminError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListDriverLoginLogs 查询司机登录日志
func (h *Handler) ListDriverLoginLogs(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.DriverLoginLogListFilter{
		Page:        page,
		PageSize:    pageSize,
		DriverID:    parseUintQuery(c, "driver_id"),
		Username:    c.Query("username"),
		CreatedFrom: parseTimeQuery(c, "created_from"),
		CreatedTo:   parseTimeQuery(c, "created_to"),
	}
	switch c.Query("success") {
	case "true":
		v := true
		filter.Success = &v
	case "false":
		v := false
		filter.Success = &v
	}

	logs, total, err := h.DriverLoginLogRepo.ListAdmin(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询登录日志失败", err)
		return
	}
	response.SuccessWithPage(c, logs, shared.BuildPagination(page, pageSize, total))
}
