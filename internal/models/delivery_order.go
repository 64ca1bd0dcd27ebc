package models

import (
	"time"

	"gorm.io/gorm"
)

// DeliveryOrder 配送订单表
type DeliveryOrder struct {
	ID              uint           `gorm:"primarykey" json:"id"`                            // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`            // 订单编号（业务标识）
	DriverID        *uint          `gorm:"index" json:"driver_id,omitempty"`                // 指派司机ID
	Status          string         `gorm:"index;not null" json:"status"`                    // 配送状态（pending/in-progress/completed/failed/delayed）
	CustomerName    string         `gorm:"type:varchar(100)" json:"customer_name"`          // 收件人
	CustomerPhone   string         `gorm:"type:varchar(30)" json:"customer_phone"`          // 收件人电话
	Address         string         `gorm:"type:varchar(500)" json:"address"`                // 配送地址
	PackageCount    int            `gorm:"not null;default:1" json:"package_count"`         // 包裹数量
	Distance        Distance       `gorm:"type:decimal(20,2);not null;default:0" json:"distance"` // 配送里程（公里）
	Instructions    string         `gorm:"type:varchar(1000)" json:"instructions"`          // 配送备注说明
	LastNoteID      *uint          `gorm:"index" json:"last_note_id,omitempty"`             // 最近一条备注ID（附件挂载目标）
	StartedAt       *time.Time     `gorm:"index" json:"started_at"`                         // 开始配送时间
	CompletedAt     *time.Time     `gorm:"index" json:"completed_at"`                       // 完成时间
	StatusChangedAt time.Time      `gorm:"index" json:"status_changed_at"`                  // 最近一次状态变更时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                         // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间

	// 关联
	Driver *Driver     `gorm:"foreignKey:DriverID" json:"driver,omitempty"` // 指派司机
	Notes  []OrderNote `gorm:"foreignKey:OrderID" json:"notes,omitempty"`   // 配送备注
}

// TableName 指定表名
func (DeliveryOrder) TableName() string {
	return "delivery_orders"
}
