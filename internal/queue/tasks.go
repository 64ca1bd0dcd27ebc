package queue

import (
	"encoding/json"

	"github.com/fleettrack/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskDeliveryNotify 配送事件通知任务
	TaskDeliveryNotify = constants.TaskDeliveryNotify
	// TaskDeliveryOverdue 配送超时巡检任务
	TaskDeliveryOverdue = constants.TaskDeliveryOverdue
)

// DeliveryNotifyPayload 配送事件通知任务载荷
type DeliveryNotifyPayload struct {
	Event     string `json:"event"`
	OrderNo   string `json:"order_no"`
	DriverID  *uint  `json:"driver_id,omitempty"`
	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status,omitempty"`
	Detail    string `json:"detail,omitempty"`
	At        int64  `json:"at"` // 事件发生时间（Unix 秒）
}

// DeliveryOverduePayload 配送超时巡检任务载荷
type DeliveryOverduePayload struct {
	OverdueAfterMinutes int `json:"overdue_after_minutes"`
}

// NewDeliveryNotifyTask 创建配送事件通知任务
func NewDeliveryNotifyTask(payload DeliveryNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeliveryNotify, body), nil
}

// NewDeliveryOverdueTask 创建配送超时巡检任务
func NewDeliveryOverdueTask(payload DeliveryOverduePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeliveryOverdue, body), nil
}
