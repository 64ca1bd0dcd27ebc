package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/queue"
	"github.com/fleettrack/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 队列任务消费者
type Consumer struct {
	cfg                 *config.Config
	deliveryService     *service.DeliveryService
	notificationService *service.NotificationService
}

// NewConsumer 创建队列任务消费者
func NewConsumer(cfg *config.Config, deliveryService *service.DeliveryService, notificationService *service.NotificationService) *Consumer {
	return &Consumer{
		cfg:                 cfg,
		deliveryService:     deliveryService,
		notificationService: notificationService,
	}
}

// Register 注册任务处理器
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TaskDeliveryNotify, c.HandleDeliveryNotify)
	mux.HandleFunc(queue.TaskDeliveryOverdue, c.HandleDeliveryOverdue)
}

// HandleDeliveryNotify 落库配送事件通知
func (c *Consumer) HandleDeliveryNotify(ctx context.Context, task *asynq.Task) error {
	var payload queue.DeliveryNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Errorw("delivery_notify_payload_invalid", "error", err)
		// 载荷无法解析时重试没有意义
		return nil
	}

	if err := c.notificationService.Record(ctx, payload); err != nil {
		logger.Errorw("delivery_notify_record_failed",
			"event", payload.Event,
			"order_no", payload.OrderNo,
			"error", err,
		)
		return err
	}
	return nil
}

// HandleDeliveryOverdue 巡检配送中订单并标记超时
func (c *Consumer) HandleDeliveryOverdue(ctx context.Context, task *asynq.Task) error {
	var payload queue.DeliveryOverduePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Errorw("delivery_overdue_payload_invalid", "error", err)
		return nil
	}

	overdueAfter := payload.OverdueAfterMinutes
	if overdueAfter <= 0 {
		overdueAfter = c.cfg.Delivery.OverdueAfterMinutes
	}

	marked, err := c.deliveryService.MarkOverdueInProgress(time.Duration(overdueAfter) * time.Minute)
	if err != nil {
		logger.Errorw("delivery_overdue_check_failed", "error", err)
		return err
	}
	if marked > 0 {
		logger.Infow("delivery_overdue_marked",
			"count", marked,
			"overdue_after_minutes", overdueAfter,
		)
	}
	return nil
}
