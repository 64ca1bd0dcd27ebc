package service

import (
	"context"
	"time"

	"github.com/fleettrack/internal/cache"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/queue"
	"github.com/fleettrack/internal/repository"
)

// notifyDedupeTTL 同一事件去重窗口
const notifyDedupeTTL = 30 * time.Second

// NotificationService 通知服务
// worker 消费配送事件后经此落库，后台通知流从这里读取
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Record 落库一条配送事件通知，同一事件短窗口内去重
func (s *NotificationService) Record(ctx context.Context, payload queue.DeliveryNotifyPayload) error {
	dedupeKey := "notify:" + payload.Event + ":" + payload.OrderNo + ":" + payload.NewStatus
	first, err := cache.SetNX(ctx, dedupeKey, "1", notifyDedupeTTL)
	if err != nil {
		logger.Warnw("delivery_notify_dedupe_check_failed", "key", dedupeKey, "error", err)
	}
	if err == nil && !first {
		logger.Debugw("delivery_notify_deduped", "event", payload.Event, "order_no", payload.OrderNo)
		return nil
	}

	notification := models.Notification{
		Event:     payload.Event,
		OrderNo:   payload.OrderNo,
		DriverID:  payload.DriverID,
		OldStatus: payload.OldStatus,
		NewStatus: payload.NewStatus,
		Detail:    payload.Detail,
	}
	if payload.At > 0 {
		notification.CreatedAt = time.Unix(payload.At, 0)
	}
	return s.notificationRepo.Create(&notification)
}

// List 查询通知列表
func (s *NotificationService) List(filter repository.NotificationListFilter) ([]models.Notification, int64, error) {
	return s.notificationRepo.List(filter)
}

// MarkRead 标记通知为已读
func (s *NotificationService) MarkRead(ids []uint) error {
	return s.notificationRepo.MarkRead(ids)
}

// CountUnread 统计未读通知数量
func (s *NotificationService) CountUnread() (int64, error) {
	return s.notificationRepo.CountUnread()
}
