package driver

import "github.com/fleettrack/internal/provider"

// Handler 司机端接口处理器入口
// 说明：该处理器仅用于司机 App 侧 API。
type Handler struct {
	*provider.Container
}

// New 创建司机端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
