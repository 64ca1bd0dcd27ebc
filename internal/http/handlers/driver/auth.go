package driver

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"

	"github.com/gin-gonic/gin"
)

// loginRequest 司机登录请求
type loginRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// Login 司机登录
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
		respondDriverLoginError(c, err)
		return
	}

	driver, token, expiresAt, err := h.DriverAuthService.Login(req.Username, req.Password, c.ClientIP())
	if err != nil {
		respondDriverLoginError(c, err)
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"driver":     driver,
	})
}

// Profile 当前司机信息
func (h *Handler) Profile(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	driver, err := h.DriverAuthService.GetDriver(driverID)
	if err != nil {
		shared.RespondError(c, response.CodeNotFound, "司机不存在", err)
		return
	}
	response.Success(c, driver)
}
