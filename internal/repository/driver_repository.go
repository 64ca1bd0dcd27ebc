package repository

import (
	"errors"
	"time"

	"github.com/fleettrack/internal/models"

	"gorm.io/gorm"
)

// DriverRepository 司机数据访问接口
type DriverRepository interface {
	GetByUsername(username string) (*models.Driver, error)
	GetByID(id uint) (*models.Driver, error)
	List(filter DriverListFilter) ([]models.Driver, int64, error)
	Create(driver *models.Driver) error
	Update(driver *models.Driver) error
	UpdateLastLogin(id uint, at time.Time) error
	Delete(id uint) error
}

// GormDriverRepository GORM 实现
type GormDriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository 创建司机仓库
func NewDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// GetByUsername 根据账号获取司机
func (r *GormDriverRepository) GetByUsername(username string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.Where("username = ?", username).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &driver, nil
}

// GetByID 根据 ID 获取司机
func (r *GormDriverRepository) GetByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &driver, nil
}

// List 查询司机列表
func (r *GormDriverRepository) List(filter DriverListFilter) ([]models.Driver, int64, error) {
	query := r.db.Model(&models.Driver{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("username LIKE ? OR name LIKE ? OR phone LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	drivers := make([]models.Driver, 0)
	err := applyPagination(query.Order("id ASC"), filter.Page, filter.PageSize).
		Find(&drivers).Error
	if err != nil {
		return nil, 0, err
	}
	return drivers, total, nil
}

// Create 创建司机
func (r *GormDriverRepository) Create(driver *models.Driver) error {
	return r.db.Create(driver).Error
}

// Update 保存司机
func (r *GormDriverRepository) Update(driver *models.Driver) error {
	return r.db.Save(driver).Error
}

// UpdateLastLogin 更新最后登录时间
func (r *GormDriverRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Driver{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// Delete 软删除司机
func (r *GormDriverRepository) Delete(id uint) error {
	return r.db.Delete(&models.Driver{}, id).Error
}
