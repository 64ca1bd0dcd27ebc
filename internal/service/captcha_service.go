package service

import (
	"strings"
	"time"

	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 验证码服务
// 登录场景按配置决定是否需要图片验证码
type CaptchaService struct {
	cfg        config.CaptchaConfig
	imageStore base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	maxStore := cfg.Image.MaxStore
	if maxStore <= 0 {
		maxStore = base64Captcha.GCLimitNumber
	}
	expireSec := cfg.Image.ExpireSeconds
	if expireSec <= 0 {
		expireSec = 300
	}
	return &CaptchaService{
		cfg:        cfg,
		imageStore: base64Captcha.NewMemoryStore(maxStore, time.Duration(expireSec)*time.Second),
	}
}

// Enabled 是否启用图片验证码
func (s *CaptchaService) Enabled() bool {
	return s != nil && strings.EqualFold(strings.TrimSpace(s.cfg.Provider), constants.CaptchaProviderImage)
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if !s.Enabled() {
		return nil, ErrCaptchaDisabled
	}

	driver := base64Captcha.NewDriverString(
		defaultPositive(s.cfg.Image.Height, 80),
		defaultPositive(s.cfg.Image.Width, 240),
		s.cfg.Image.NoiseCount,
		s.cfg.Image.ShowLine,
		defaultPositive(s.cfg.Image.Length, 5),
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.imageStore)
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify 校验验证码（未启用时直接放行）
func (s *CaptchaService) Verify(captchaID, captchaCode string) error {
	if !s.Enabled() {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	captchaCode = strings.TrimSpace(captchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.imageStore.Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func defaultPositive(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
