package service

import (
	"strings"

	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AdminService 管理员账号管理服务
type AdminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService 创建管理员账号管理服务
func NewAdminService(adminRepo repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// List 查询全部管理员
func (s *AdminService) List() ([]models.Admin, error) {
	return s.adminRepo.List()
}

// Get 获取管理员详情
func (s *AdminService) Get(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// Create 创建管理员账号
func (s *AdminService) Create(username, password string, isSuper bool) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	existing, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		IsSuper:      isSuper,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete 删除管理员账号，禁止删除当前登录账号
func (s *AdminService) Delete(id, operatorID uint) error {
	if id == operatorID {
		return ErrCannotDeleteSelf
	}
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	return s.adminRepo.Delete(id)
}
