package service

import (
	"errors"
	"time"

	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DriverAuthService 司机认证服务
type DriverAuthService struct {
	cfg          *config.Config
	driverRepo   repository.DriverRepository
	loginLogRepo repository.DriverLoginLogRepository
}

// NewDriverAuthService 创建司机认证服务
func NewDriverAuthService(
	cfg *config.Config,
	driverRepo repository.DriverRepository,
	loginLogRepo repository.DriverLoginLogRepository,
) *DriverAuthService {
	return &DriverAuthService{
		cfg:          cfg,
		driverRepo:   driverRepo,
		loginLogRepo: loginLogRepo,
	}
}

// DriverJWTClaims 司机 JWT 声明
type DriverJWTClaims struct {
	DriverID uint   `json:"driver_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成司机 JWT Token
func (s *DriverAuthService) GenerateJWT(driver *models.Driver) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.DriverJWT.ExpireHours) * time.Hour)

	claims := DriverJWTClaims{
		DriverID: driver.ID,
		Username: driver.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.DriverJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析司机 JWT Token
func (s *DriverAuthService) ParseJWT(tokenString string) (*DriverJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &DriverJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.DriverJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*DriverJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// Login 司机登录
func (s *DriverAuthService) Login(username, password, clientIP string) (*models.Driver, string, time.Time, error) {
	driver, err := s.driverRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if driver == nil {
		s.recordLogin(nil, username, clientIP, false, constants.LoginFailReasonInvalidCredentials)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.PasswordHash), []byte(password)); err != nil {
		s.recordLogin(&driver.ID, username, clientIP, false, constants.LoginFailReasonInvalidCredentials)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if driver.Status == constants.DriverStatusDisabled {
		s.recordLogin(&driver.ID, username, clientIP, false, constants.LoginFailReasonDriverDisabled)
		return nil, "", time.Time{}, ErrDriverDisabled
	}

	token, expiresAt, err := s.GenerateJWT(driver)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	if err := s.driverRepo.UpdateLastLogin(driver.ID, now); err != nil {
		logger.Warnw("driver_last_login_update_failed", "driver_id", driver.ID, "error", err)
	}
	driver.LastLoginAt = &now
	s.recordLogin(&driver.ID, username, clientIP, true, "")

	return driver, token, expiresAt, nil
}

// GetDriver 获取司机信息
func (s *DriverAuthService) GetDriver(driverID uint) (*models.Driver, error) {
	driver, err := s.driverRepo.GetByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

func (s *DriverAuthService) recordLogin(driverID *uint, username, clientIP string, success bool, reason string) {
	if s.loginLogRepo == nil {
		return
	}
	entry := models.DriverLoginLog{
		DriverID: driverID,
		Username: username,
		ClientIP: clientIP,
		Success:  success,
		Reason:   reason,
	}
	if err := s.loginLogRepo.Create(&entry); err != nil {
		logger.Warnw("driver_login_log_write_failed", "username", username, "error", err)
	}
}
