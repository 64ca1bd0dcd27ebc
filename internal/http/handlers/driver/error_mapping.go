package driver

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

var deliveryActionErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNoEmpty, code: response.CodeBadRequest, msg: "订单编号不能为空"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "配送订单不存在"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, msg: "非法的配送状态"},
	{target: service.ErrInvalidTransition, code: response.CodeBadRequest, msg: "非法的配送状态流转"},
	{target: service.ErrInvalidAttachment, code: response.CodeBadRequest, msg: "非法的附件类型"},
	{target: service.ErrNoteTextEmpty, code: response.CodeBadRequest, msg: "备注内容不能为空"},
	{target: service.ErrNoteTooLong, code: response.CodeBadRequest, msg: "备注内容超长"},
}

var driverLoginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "账号或密码错误"},
	{target: service.ErrDriverDisabled, code: response.CodeForbidden, msg: "账号已停用"},
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, msg: "需要验证码"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, msg: "验证码错误"},
}

func respondDeliveryActionError(c *gin.Context, err error) {
	respondWithMappedError(c, err, deliveryActionErrorRules, response.CodeInternal, "配送操作失败")
}

func respondDriverLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, driverLoginErrorRules, response.CodeInternal, "登录失败")
}
