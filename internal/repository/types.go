package repository

import "time"

// OrderListFilter 查询配送订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	DriverID    uint
	Status      string
	OrderNo     string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CompletedListFilter 查询完成记录列表的过滤条件
type CompletedListFilter struct {
	Page          int
	PageSize      int
	DriverID      uint
	OrderNo       string
	CompletedFrom *time.Time
	CompletedTo   *time.Time
}

// DriverListFilter 查询司机列表的过滤条件
type DriverListFilter struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// NotificationListFilter 查询通知列表的过滤条件
type NotificationListFilter struct {
	Page       int
	PageSize   int
	Event      string
	OrderNo    string
	DriverID   uint
	UnreadOnly bool
}

// DriverLoginLogListFilter 查询司机登录日志的过滤条件
type DriverLoginLogListFilter struct {
	Page        int
	PageSize    int
	DriverID    uint
	Username    string
	Success     *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
