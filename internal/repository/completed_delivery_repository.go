package repository

import (
	"time"

	"github.com/fleettrack/internal/models"

	"gorm.io/gorm"
)

// CompletedDeliveryRepository 完成记录数据访问接口
type CompletedDeliveryRepository interface {
	Append(record *models.CompletedDelivery) error
	List(filter CompletedListFilter) ([]models.CompletedDelivery, int64, error)
	ListByOrder(orderID uint) ([]models.CompletedDelivery, error)
	CountSince(driverID uint, since time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormCompletedDeliveryRepository
}

// GormCompletedDeliveryRepository GORM 实现
type GormCompletedDeliveryRepository struct {
	db *gorm.DB
}

// NewCompletedDeliveryRepository 创建完成记录仓库
func NewCompletedDeliveryRepository(db *gorm.DB) *GormCompletedDeliveryRepository {
	return &GormCompletedDeliveryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCompletedDeliveryRepository) WithTx(tx *gorm.DB) *GormCompletedDeliveryRepository {
	if tx == nil {
		return r
	}
	return &GormCompletedDeliveryRepository{db: tx}
}

// Append 追加完成记录（不去重，同一订单重复完成产生多条）
func (r *GormCompletedDeliveryRepository) Append(record *models.CompletedDelivery) error {
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}
	return r.db.Create(record).Error
}

// List 查询完成记录列表
func (r *GormCompletedDeliveryRepository) List(filter CompletedListFilter) ([]models.CompletedDelivery, int64, error) {
	query := r.db.Model(&models.CompletedDelivery{})
	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CompletedFrom != nil {
		query = query.Where("completed_at >= ?", *filter.CompletedFrom)
	}
	if filter.CompletedTo != nil {
		query = query.Where("completed_at <= ?", *filter.CompletedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]models.CompletedDelivery, 0)
	err := applyPagination(query.Order("completed_at DESC"), filter.Page, filter.PageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListByOrder 按完成顺序查询某订单的全部完成记录
func (r *GormCompletedDeliveryRepository) ListByOrder(orderID uint) ([]models.CompletedDelivery, error) {
	records := make([]models.CompletedDelivery, 0)
	err := r.db.
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountSince 统计司机自某时间起的完成单量（driverID 为 0 时统计全部）
func (r *GormCompletedDeliveryRepository) CountSince(driverID uint, since time.Time) (int64, error) {
	query := r.db.Model(&models.CompletedDelivery{}).Where("completed_at >= ?", since)
	if driverID != 0 {
		query = query.Where("driver_id = ?", driverID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
