package models

import "time"

// OrderNote 配送备注表（按订单追加，只增不改）
type OrderNote struct {
	ID        uint      `gorm:"primarykey" json:"id"`              // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`    // 配送订单ID
	OrderNo   string    `gorm:"index;not null" json:"order_no"`    // 订单编号（冗余，便于按编号查询）
	DriverID  *uint     `gorm:"index" json:"driver_id,omitempty"`  // 记录人（司机）ID
	Text      string    `gorm:"type:varchar(2000)" json:"text"`    // 备注内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`           // 记录时间

	// 关联
	Attachments []Attachment `gorm:"foreignKey:NoteID" json:"attachments,omitempty"` // 备注附件
}

// TableName 指定表名
func (OrderNote) TableName() string {
	return "order_notes"
}
