package driver

import (
	"github.com/fleettrack/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// currentDriverID 读取当前登录司机 ID
func currentDriverID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "driver_id")
}
