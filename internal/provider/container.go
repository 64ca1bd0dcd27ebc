package provider

import (
	"github.com/fleettrack/internal/authz"
	"github.com/fleettrack/internal/cache"
	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/queue"
	"github.com/fleettrack/internal/repository"
	"github.com/fleettrack/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	DriverRepo         repository.DriverRepository
	DriverLoginLogRepo repository.DriverLoginLogRepository
	OrderRepo          repository.OrderRepository
	NoteRepo           repository.NoteRepository
	CompletedRepo      repository.CompletedDeliveryRepository
	NotificationRepo   repository.NotificationRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	AdminService        *service.AdminService
	DriverAuthService   *service.DriverAuthService
	DriverService       *service.DriverService
	DeliveryService     *service.DeliveryService
	OrderAdminService   *service.OrderAdminService
	NotificationService *service.NotificationService
	CaptchaService      *service.CaptchaService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.DriverRepo = repository.NewDriverRepository(db)
	c.DriverLoginLogRepo = repository.NewDriverLoginLogRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.NoteRepo = repository.NewNoteRepository(db)
	c.CompletedRepo = repository.NewCompletedDeliveryRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AdminService = service.NewAdminService(c.AdminRepo)
	c.DriverAuthService = service.NewDriverAuthService(c.Config, c.DriverRepo, c.DriverLoginLogRepo)
	c.DriverService = service.NewDriverService(c.DriverRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)

	var notifier service.Notifier = service.NopNotifier{}
	if c.QueueClient.Enabled() {
		notifier = service.NewQueueNotifier(c.QueueClient)
	}
	c.DeliveryService = service.NewDeliveryService(c.Config, c.OrderRepo, c.NoteRepo, c.CompletedRepo, notifier)
	c.OrderAdminService = service.NewOrderAdminService(c.OrderRepo, c.DriverRepo)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)
}
