package admin

import (
	"strconv"
	"time"

	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 后台管理接口
type Handler struct {
	*provider.Container
}

// New 创建后台管理接口处理器
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}

// parsePageQuery 读取并规范化分页参数
func parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return shared.NormalizePagination(page, pageSize)
}

// parseUintQuery 读取无符号整数查询参数，缺省返回 0
func parseUintQuery(c *gin.Context, key string) uint {
	value, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}

// parseTimeQuery 读取 RFC3339 时间查询参数
func parseTimeQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}

// parseIDParam 读取路径中的 :id 参数
func parseIDParam(c *gin.Context) (uint, bool) {
	value, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func currentAdminID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "admin_id")
}
