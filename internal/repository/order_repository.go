package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 配送订单数据访问接口
type OrderRepository interface {
	Create(order *models.DeliveryOrder) error
	GetByID(id uint) (*models.DeliveryOrder, error)
	GetByOrderNo(orderNo string) (*models.DeliveryOrder, error)
	EnsureByOrderNo(orderNo string) (*models.DeliveryOrder, error)
	ListAdmin(filter OrderListFilter) ([]models.DeliveryOrder, int64, error)
	ListByDriver(driverID uint, filter OrderListFilter) ([]models.DeliveryOrder, int64, error)
	ListOverdueInProgress(before time.Time) ([]models.DeliveryOrder, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	SetLastNote(id uint, noteID uint) error
	AssignDriver(id uint, driverID *uint) error
	Update(order *models.DeliveryOrder) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建配送订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建配送订单
func (r *GormOrderRepository) Create(order *models.DeliveryOrder) error {
	if order.Status == "" {
		order.Status = constants.DeliveryStatusPending
	}
	if order.StatusChangedAt.IsZero() {
		order.StatusChangedAt = time.Now()
	}
	return r.db.Create(order).Error
}

// GetByID 根据 ID 获取配送订单
func (r *GormOrderRepository) GetByID(id uint) (*models.DeliveryOrder, error) {
	var order models.DeliveryOrder
	if err := r.db.Preload("Driver").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo 根据订单编号获取配送订单
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.DeliveryOrder, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, nil
	}
	var order models.DeliveryOrder
	if err := r.db.Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// EnsureByOrderNo 根据订单编号获取配送订单，不存在时自动以 pending 状态创建
func (r *GormOrderRepository) EnsureByOrderNo(orderNo string) (*models.DeliveryOrder, error) {
	order, err := r.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return order, nil
	}

	order = &models.DeliveryOrder{
		OrderNo:         strings.TrimSpace(orderNo),
		Status:          constants.DeliveryStatusPending,
		StatusChangedAt: time.Now(),
	}
	if err := r.db.Create(order).Error; err != nil {
		// 并发写入撞唯一索引时重查一次
		if existing, getErr := r.GetByOrderNo(orderNo); getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return order, nil
}

// ListAdmin 管理端查询配送订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.DeliveryOrder, int64, error) {
	query := r.db.Model(&models.DeliveryOrder{})
	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("order_no LIKE ? OR customer_name LIKE ? OR address LIKE ?", like, like, like)
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

	orders := make([]models.DeliveryOrder, 0)
	err := applyPagination(query.Preload("Driver").Order("created_at DESC"), filter.Page, filter.PageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListByDriver 查询指派给某司机的配送订单
func (r *GormOrderRepository) ListByDriver(driverID uint, filter OrderListFilter) ([]models.DeliveryOrder, int64, error) {
	query := r.db.Model(&models.DeliveryOrder{}).Where("driver_id = ?", driverID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]models.DeliveryOrder, 0)
	err := applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListOverdueInProgress 查询状态变更时间早于 before 且仍在配送中的订单
func (r *GormOrderRepository) ListOverdueInProgress(before time.Time) ([]models.DeliveryOrder, error) {
	orders := make([]models.DeliveryOrder, 0)
	err := r.db.
		Where("status = ?", constants.DeliveryStatusInProgress).
		Where("status_changed_at < ?", before).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新配送状态及附带字段
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	values := map[string]interface{}{
		"status":            status,
		"status_changed_at": time.Now(),
	}
	for k, v := range updates {
		values[k] = v
	}
	return r.db.Model(&models.DeliveryOrder{}).Where("id = ?", id).Updates(values).Error
}

// SetLastNote 更新最近一条备注指针
func (r *GormOrderRepository) SetLastNote(id uint, noteID uint) error {
	return r.db.Model(&models.DeliveryOrder{}).Where("id = ?", id).Update("last_note_id", noteID).Error
}

// AssignDriver 指派或取消指派司机
func (r *GormOrderRepository) AssignDriver(id uint, driverID *uint) error {
	return r.db.Model(&models.DeliveryOrder{}).Where("id = ?", id).Update("driver_id", driverID).Error
}

// Update 保存配送订单
func (r *GormOrderRepository) Update(order *models.DeliveryOrder) error {
	return r.db.Save(order).Error
}

// Delete 软删除配送订单
func (r *GormOrderRepository) Delete(id uint) error {
	return r.db.Delete(&models.DeliveryOrder{}, id).Error
}
