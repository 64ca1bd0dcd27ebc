package repository

import (
	"time"

	"github.com/fleettrack/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	Create(notification *models.Notification) error
	List(filter NotificationListFilter) ([]models.Notification, int64, error)
	MarkRead(ids []uint) error
	CountUnread() (int64, error)
}

// GormNotificationRepository GORM 实现
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓库
func NewNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create 落库一条通知
func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	if notification == nil {
		return nil
	}
	return r.db.Create(notification).Error
}

// List 查询通知列表
func (r *GormNotificationRepository) List(filter NotificationListFilter) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{})
	if filter.Event != "" {
		query = query.Where("event = ?", filter.Event)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.DriverID != 0 {
		query = query.Where("driver_id = ?", filter.DriverID)
	}
	if filter.UnreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]models.Notification, 0)
	err := applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkRead 标记通知为已读
func (r *GormNotificationRepository) MarkRead(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("id IN ?", ids).
		Where("read_at IS NULL").
		Update("read_at", now).Error
}

// CountUnread 统计未读通知数量
func (r *GormNotificationRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("read_at IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
