package models

import "time"

// DriverLoginLog 司机登录日志表
type DriverLoginLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	DriverID  *uint     `gorm:"index" json:"driver_id,omitempty"` // 司机ID（登录失败时可能为空）
	Username  string    `gorm:"index" json:"username"`            // 尝试登录的账号
	ClientIP  string    `gorm:"type:varchar(64)" json:"client_ip"` // 客户端IP
	Success   bool      `gorm:"index;not null" json:"success"`    // 是否成功
	Reason    string    `gorm:"type:varchar(50)" json:"reason,omitempty"` // 失败原因
	CreatedAt time.Time `gorm:"index" json:"created_at"`          // 登录时间
}

// TableName 指定表名
func (DriverLoginLog) TableName() string {
	return "driver_login_logs"
}
