package repository

import (
	"github.com/fleettrack/internal/models"

	"gorm.io/gorm"
)

// DriverLoginLogRepository 司机登录日志数据访问接口
type DriverLoginLogRepository interface {
	Create(log *models.DriverLoginLog) error
	ListAdmin(filter DriverLoginLogListFilter) ([]models.DriverLoginLog, int64, error)
}

// GormDriverLoginLogRepository GORM 实现
type GormDriverLoginLogRepository struct {
	db *gorm.DB
}

// NewDriverLoginLogRepository 创建司机登录日志仓库
func NewDriverLoginLogRepository(db *gorm.DB) *GormDriverLoginLogRepository {
	return &GormDriverLoginLogRepository{db: db}
}

// Create 创建登录日志
func (r *GormDriverLoginLogRepository) Create(log *models.DriverLoginLog) error {
	if log == nil {
		return nil
	}
	return r.db.Create(log).Error
}

// ListAdmin 管理端查询司机登录日志
func (r *GormDriverLoginLogRepository) ListAdmin(filter DriverLoginLogListFilter) ([]models.DriverLoginLog, int64, error) {
	query := r.db.Model(&models.DriverLoginLog{})
	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.Success != nil {
		query = query.Where("success = ?", *filter.Success)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.DriverLoginLog, 0)
	err := applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
