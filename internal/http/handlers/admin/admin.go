package admin

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"

	"github.com/gin-gonic/gin"
)

// createAdminRequest 创建管理员请求
type createAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	IsSuper  bool   `json:"is_super"`
}

// setRolesRequest 设置管理员角色请求
type setRolesRequest struct {
	Roles []string `json:"roles"`
}

// rolePolicyRequest 角色权限点请求
type rolePolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// ListAdmins 查询管理员列表
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.AdminService.List()
	if err != nil {
		respondAdminAccountError(c, err)
		return
	}
	response.Success(c, admins)
}

// CreateAdmin 创建管理员
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	admin, err := h.AdminService.Create(req.Username, req.Password, req.IsSuper)
	if err != nil {
		respondAdminAccountError(c, err)
		return
	}
	response.Success(c, admin)
}

// DeleteAdmin 删除管理员
func (h *Handler) DeleteAdmin(c *gin.Context) {
	operatorID, ok := currentAdminID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的管理员 ID", nil)
		return
	}
	if err := h.AdminService.Delete(id, operatorID); err != nil {
		respondAdminAccountError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetAdminRoles 查询管理员角色
func (h *Handler) GetAdminRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的管理员 ID", nil)
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询角色失败", err)
		return
	}
	response.Success(c, roles)
}

// SetAdminRoles 设置管理员角色（整体替换）
func (h *Handler) SetAdminRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "非法的管理员 ID", nil)
		return
	}
	var req setRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	if _, err := h.AdminService.Get(id); err != nil {
		respondAdminAccountError(c, err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(id, req.Roles); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "设置角色失败", err)
		return
	}
	response.Success(c, nil)
}

// ListRoles 查询全部角色
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "查询角色失败", err)
		return
	}
	response.Success(c, roles)
}

// GetRolePolicies 查询角色权限点
func (h *Handler) GetRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		shared.RespondError(c, response.CodeBadRequest, "查询角色权限失败", err)
		return
	}
	response.Success(c, policies)
}

// GrantRolePolicy 为角色授予权限点
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	var req rolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	if err := h.AuthzService.GrantRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "授权失败", err)
		return
	}
	response.Success(c, nil)
}

// RevokeRolePolicy 收回角色权限点
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	var req rolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "收回授权失败", err)
		return
	}
	response.Success(c, nil)
}
