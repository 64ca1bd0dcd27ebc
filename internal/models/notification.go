package models

import "time"

// Notification 配送事件通知表（由异步 worker 落库，供后台通知流查询）
type Notification struct {
	ID        uint       `gorm:"primarykey" json:"id"`           // 主键
	Event     string     `gorm:"index;not null" json:"event"`    // 事件类型（delivery_status_changed 等）
	OrderNo   string     `gorm:"index;not null" json:"order_no"` // 订单编号
	DriverID  *uint      `gorm:"index" json:"driver_id,omitempty"` // 相关司机ID
	OldStatus string     `gorm:"type:varchar(20)" json:"old_status,omitempty"` // 变更前状态
	NewStatus string     `gorm:"type:varchar(20)" json:"new_status,omitempty"` // 变更后状态
	Detail    string     `gorm:"type:varchar(2000)" json:"detail,omitempty"`   // 事件详情
	ReadAt    *time.Time `gorm:"index" json:"read_at"`           // 已读时间
	CreatedAt time.Time  `gorm:"index" json:"created_at"`        // 产生时间
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
