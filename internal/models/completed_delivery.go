package models

import "time"

// CompletedDelivery 完成记录表（只追加，不去重：重复完成会留下多条记录）
type CompletedDelivery struct {
	ID          uint      `gorm:"primarykey" json:"id"`             // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`   // 配送订单ID
	OrderNo     string    `gorm:"index;not null" json:"order_no"`   // 订单编号
	DriverID    *uint     `gorm:"index" json:"driver_id,omitempty"` // 完成司机ID
	Distance    Distance  `gorm:"type:decimal(20,2);not null;default:0" json:"distance"` // 配送里程（公里）
	CompletedAt time.Time `gorm:"index;not null" json:"completed_at"` // 完成时间
	CreatedAt   time.Time `json:"created_at"`                       // 记录时间
}

// TableName 指定表名
func (CompletedDelivery) TableName() string {
	return "completed_deliveries"
}
