package admin

import (
	"errors"

	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			shared.RespondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	shared.RespondError(c, fallbackCode, fallbackMsg, err)
}

var orderAdminErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNoEmpty, code: response.CodeBadRequest, msg: "订单编号不能为空"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "配送订单不存在"},
	{target: service.ErrDriverNotFound, code: response.CodeBadRequest, msg: "司机不存在"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, msg: "非法的配送状态"},
}

var driverAdminErrorRules = []mappedHandlerError{
	{target: service.ErrDriverNotFound, code: response.CodeNotFound, msg: "司机不存在"},
	{target: service.ErrDriverExists, code: response.CodeConflict, msg: "司机账号已存在"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, msg: "非法的司机状态"},
}

var adminAccountErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "管理员不存在"},
	{target: service.ErrAdminExists, code: response.CodeConflict, msg: "管理员账号已存在"},
	{target: service.ErrCannotDeleteSelf, code: response.CodeBadRequest, msg: "不能删除当前登录账号"},
}

var adminAuthErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "账号或密码错误"},
	{target: service.ErrInvalidPassword, code: response.CodeBadRequest, msg: "原密码错误"},
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, msg: "需要验证码"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, msg: "验证码错误"},
}

func respondOrderAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderAdminErrorRules, response.CodeInternal, "订单操作失败")
}

func respondDriverAdminError(c *gin.Context, err error) {
	respondWithMappedError(c, err, driverAdminErrorRules, response.CodeInternal, "司机操作失败")
}

func respondAdminAccountError(c *gin.Context, err error) {
	respondWithMappedError(c, err, adminAccountErrorRules, response.CodeInternal, "管理员操作失败")
}

func respondAdminAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, adminAuthErrorRules, response.CodeInternal, "登录失败")
}
