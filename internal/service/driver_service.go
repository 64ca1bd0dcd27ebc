package service

import (
	"strings"

	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// DriverService 司机管理服务（后台侧）
type DriverService struct {
	driverRepo repository.DriverRepository
}

// NewDriverService 创建司机管理服务
func NewDriverService(driverRepo repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

// DriverCreateInput 创建司机入参
type DriverCreateInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
	PlateNumber string `json:"plate_number"`
}

// DriverUpdateInput 更新司机入参
type DriverUpdateInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	VehicleType *string `json:"vehicle_type"`
	PlateNumber *string `json:"plate_number"`
	Status      *string `json:"status"`
	Password    *string `json:"password"`
}

// List 查询司机列表
func (s *DriverService) List(filter repository.DriverListFilter) ([]models.Driver, int64, error) {
	return s.driverRepo.List(filter)
}

// Get 获取司机详情
func (s *DriverService) Get(id uint) (*models.Driver, error) {
	driver, err := s.driverRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

// Create 创建司机账号
func (s *DriverService) Create(input DriverCreateInput) (*models.Driver, error) {
	username := strings.TrimSpace(input.Username)
	existing, err := s.driverRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDriverExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	vehicleType := normalizeVehicleType(input.VehicleType)
	driver := models.Driver{
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		VehicleType:  vehicleType,
		PlateNumber:  strings.TrimSpace(input.PlateNumber),
		Status:       constants.DriverStatusActive,
	}
	if err := s.driverRepo.Create(&driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// Update 更新司机资料
func (s *DriverService) Update(id uint, input DriverUpdateInput) (*models.Driver, error) {
	driver, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		driver.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		driver.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.VehicleType != nil {
		driver.VehicleType = normalizeVehicleType(*input.VehicleType)
	}
	if input.PlateNumber != nil {
		driver.PlateNumber = strings.TrimSpace(*input.PlateNumber)
	}
	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		if status != constants.DriverStatusActive && status != constants.DriverStatusDisabled {
			return nil, ErrInvalidStatus
		}
		driver.Status = status
	}
	if input.Password != nil && strings.TrimSpace(*input.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		driver.PasswordHash = string(hash)
	}

	if err := s.driverRepo.Update(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Delete 删除司机账号
func (s *DriverService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.driverRepo.Delete(id)
}

func normalizeVehicleType(vehicleType string) string {
	normalized := strings.ToLower(strings.TrimSpace(vehicleType))
	switch normalized {
	case constants.VehicleTypeVan, constants.VehicleTypeTruck, constants.VehicleTypeBike, constants.VehicleTypeScooter:
		return normalized
	default:
		return constants.VehicleTypeVan
	}
}
