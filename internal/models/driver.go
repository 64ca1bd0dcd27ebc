package models

import (
	"time"

	"gorm.io/gorm"
)

// Driver 司机表
type Driver struct {
	ID           uint           `gorm:"primarykey" json:"id"`                 // 主键
	Username     string         `gorm:"uniqueIndex;not null" json:"username"` // 司机账号
	PasswordHash string         `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	Name         string         `gorm:"not null" json:"name"`                 // 姓名
	Phone        string         `gorm:"index" json:"phone,omitempty"`         // 联系电话
	VehicleType  string         `gorm:"type:varchar(20)" json:"vehicle_type"` // 车辆类型（van/truck/bike/scooter）
	PlateNumber  string         `gorm:"type:varchar(20)" json:"plate_number"` // 车牌号
	Status       string         `gorm:"index;not null" json:"status"`         // 状态（active/disabled）
	LastLoginAt  *time.Time     `json:"last_login_at"`                        // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                           // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (Driver) TableName() string {
	return "drivers"
}
