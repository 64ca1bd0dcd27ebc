package router

import (
	"github.com/fleettrack/internal/cache"
	"github.com/fleettrack/internal/http/handlers/admin"
	"github.com/fleettrack/internal/http/handlers/driver"
	"github.com/fleettrack/internal/http/handlers/public"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/provider"

	"github.com/gin-gonic/gin"
)

// New 构建 HTTP 路由
func New(container *provider.Container) *gin.Engine {
	cfg := container.Config
	gin.SetMode(resolveGinMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(logger.Z()),
		CORSMiddleware(cfg.CORS),
	)

	publicHandler := public.New(container)
	adminHandler := admin.New(container)
	driverHandler := driver.New(container)

	engine.GET("/health", publicHandler.Health)

	api := engine.Group("/api/v1")

	api.GET("/public/captcha/image", publicHandler.CaptchaImage)

	// 登录接口限流（按 IP + 账号）
	loginLimit := RateLimitRule{
		Prefix:        "login",
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	loginKey := KeyByIPAndJSONField("username")

	adminLogin := api.Group("/auth")
	if cache.Enabled() {
		adminLogin.Use(RateLimitMiddleware(cache.Client(), loginLimit, loginKey))
	}
	adminLogin.POST("/login", adminHandler.Login)

	driverLogin := api.Group("/driver/auth")
	if cache.Enabled() {
		driverLogin.Use(RateLimitMiddleware(cache.Client(), loginLimit, loginKey))
	}
	driverLogin.POST("/login", driverHandler.Login)

	registerAdminRoutes(api, container, adminHandler)
	registerDriverRoutes(api, container, driverHandler)

	return engine
}

func registerAdminRoutes(api *gin.RouterGroup, container *provider.Container, h *admin.Handler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(AdminJWTAuthMiddleware(container.Config.JWT.SecretKey, container.AdminRepo))

	// 自助接口不做 RBAC 校验
	adminGroup.GET("/me", h.Me)
	adminGroup.POST("/change-password", h.ChangePassword)

	managed := adminGroup.Group("")
	managed.Use(AdminRBACMiddleware(container.AuthzService))

	managed.GET("/orders", h.ListOrders)
	managed.POST("/orders", h.CreateOrder)
	managed.GET("/orders/:id", h.GetOrder)
	managed.PUT("/orders/:id", h.UpdateOrder)
	managed.DELETE("/orders/:id", h.DeleteOrder)
	managed.POST("/orders/:id/assign", h.AssignOrder)
	managed.GET("/orders/:id/notes", h.GetOrderNotes)

	managed.GET("/drivers", h.ListDrivers)
	managed.POST("/drivers", h.CreateDriver)
	managed.GET("/drivers/:id", h.GetDriver)
	managed.PUT("/drivers/:id", h.UpdateDriver)
	managed.DELETE("/drivers/:id", h.DeleteDriver)

	managed.GET("/completed-deliveries", h.ListCompletedDeliveries)
	managed.GET("/completed-deliveries/today", h.CompletedToday)

	managed.GET("/driver-login-logs", h.ListDriverLoginLogs)

	managed.GET("/notifications", h.ListNotifications)
	managed.POST("/notifications/read", h.MarkNotificationsRead)
	managed.GET("/notifications/unread-count", h.CountUnreadNotifications)

	managed.GET("/admins", h.ListAdmins)
	managed.POST("/admins", h.CreateAdmin)
	managed.DELETE("/admins/:id", h.DeleteAdmin)
	managed.GET("/admins/:id/roles", h.GetAdminRoles)
	managed.PUT("/admins/:id/roles", h.SetAdminRoles)

	managed.GET("/roles", h.ListRoles)
	managed.GET("/roles/:role/policies", h.GetRolePolicies)
	managed.POST("/roles/:role/policies", h.GrantRolePolicy)
	managed.DELETE("/roles/:role/policies", h.RevokeRolePolicy)
}

func registerDriverRoutes(api *gin.RouterGroup, container *provider.Container, h *driver.Handler) {
	driverGroup := api.Group("/driver")
	driverGroup.Use(DriverJWTAuthMiddleware(container.Config.DriverJWT.SecretKey, container.DriverRepo))

	driverGroup.GET("/profile", h.Profile)

	driverGroup.GET("/deliveries", h.ListAssigned)
	driverGroup.GET("/deliveries/:order_no/status", h.GetStatus)
	driverGroup.PUT("/deliveries/:order_no/status", h.UpdateStatus)
	driverGroup.POST("/deliveries/:order_no/start", h.Start)
	driverGroup.POST("/deliveries/:order_no/complete", h.Complete)
	driverGroup.POST("/deliveries/:order_no/issue", h.ReportIssue)
	driverGroup.GET("/deliveries/:order_no/notes", h.ListNotes)
	driverGroup.POST("/deliveries/:order_no/notes", h.AddNote)
	driverGroup.POST("/deliveries/:order_no/attachments", h.AddAttachment)

	driverGroup.GET("/completed-deliveries", h.ListCompleted)
	driverGroup.GET("/notifications", h.ListNotifications)
}

func resolveGinMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
