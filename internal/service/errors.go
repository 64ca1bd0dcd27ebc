package service

import "errors"

// 服务层统一业务错误，handler 层据此映射响应码
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrOrderNotFound      = errors.New("配送订单不存在")
	ErrDriverNotFound     = errors.New("司机不存在")
	ErrDriverDisabled     = errors.New("司机已停用")
	ErrDriverExists       = errors.New("司机账号已存在")
	ErrAdminExists        = errors.New("管理员账号已存在")
	ErrInvalidCredentials = errors.New("账号或密码错误")
	ErrInvalidPassword    = errors.New("密码错误")
	ErrInvalidStatus      = errors.New("非法的配送状态")
	ErrInvalidTransition  = errors.New("非法的配送状态流转")
	ErrInvalidAttachment  = errors.New("非法的附件类型")
	ErrNoteTextEmpty      = errors.New("备注内容不能为空")
	ErrNoteTooLong        = errors.New("备注内容超长")
	ErrOrderNoEmpty       = errors.New("订单编号不能为空")
	ErrOrderNotAssigned   = errors.New("订单未指派给当前司机")
	ErrCaptchaRequired    = errors.New("需要验证码")
	ErrCaptchaInvalid     = errors.New("验证码错误")
	ErrCaptchaDisabled    = errors.New("验证码未启用")
	ErrRateLimited        = errors.New("请求过于频繁")
	ErrCannotDeleteSelf   = errors.New("不能删除当前登录账号")
)
