package service

import (
	"time"

	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/queue"
)

// DeliveryEvent 配送事件，状态变更与通知派发解耦的载体
type DeliveryEvent struct {
	Event     string
	OrderNo   string
	DriverID  *uint
	OldStatus string
	NewStatus string
	Detail    string
	At        time.Time
}

// Notifier 配送事件通知接口
type Notifier interface {
	Notify(event DeliveryEvent)
}

// QueueNotifier 基于异步队列的通知实现
type QueueNotifier struct {
	queueClient *queue.Client
}

// NewQueueNotifier 创建队列通知器
func NewQueueNotifier(queueClient *queue.Client) *QueueNotifier {
	return &QueueNotifier{queueClient: queueClient}
}

// Notify 推送事件到异步队列，失败只记日志不影响主流程
func (n *QueueNotifier) Notify(event DeliveryEvent) {
	if n == nil || !n.queueClient.Enabled() {
		return
	}
	at := event.At
	if at.IsZero() {
		at = time.Now()
	}
	payload := queue.DeliveryNotifyPayload{
		Event:     event.Event,
		OrderNo:   event.OrderNo,
		DriverID:  event.DriverID,
		OldStatus: event.OldStatus,
		NewStatus: event.NewStatus,
		Detail:    event.Detail,
		At:        at.Unix(),
	}
	if err := n.queueClient.EnqueueDeliveryNotify(payload); err != nil {
		logger.Errorw("delivery_notify_enqueue_failed",
			"event", event.Event,
			"order_no", event.OrderNo,
			"error", err,
		)
	}
}

// NopNotifier 空实现，队列关闭或测试场景使用
type NopNotifier struct{}

// Notify 丢弃事件
func (NopNotifier) Notify(DeliveryEvent) {}
