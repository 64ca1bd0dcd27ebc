package public

import (
	"errors"

	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"
	"github.com/fleettrack/internal/provider"
	"github.com/fleettrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 公共接口
type Handler struct {
	*provider.Container
}

// New 创建公共接口处理器
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// CaptchaImage 获取图片验证码
func (h *Handler) CaptchaImage(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if errors.Is(err, service.ErrCaptchaDisabled) {
			shared.RespondError(c, response.CodeBadRequest, "图片验证码未启用", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "生成验证码失败", err)
		return
	}
	response.Success(c, challenge)
}
