package worker

import (
	"context"
	"time"

	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/provider"
	"github.com/fleettrack/internal/queue"

	"github.com/hibiken/asynq"
)

// overdueCheckInterval 配送超时巡检周期
const overdueCheckInterval = 5 * time.Minute

// Service 队列消费服务
type Service struct {
	container *provider.Container
	server    *asynq.Server
	mux       *asynq.ServeMux

	stopOverdue chan struct{}
}

// NewService 创建队列消费服务
func NewService(container *provider.Container) *Service {
	opt, serverCfg := queue.BuildServerConfig(&container.Config.Queue)
	server := asynq.NewServer(opt, serverCfg)

	mux := asynq.NewServeMux()
	consumer := NewConsumer(container.Config, container.DeliveryService, container.NotificationService)
	consumer.Register(mux)

	return &Service{
		container:   container,
		server:      server,
		mux:         mux,
		stopOverdue: make(chan struct{}),
	}
}

// Name 服务名称
func (s *Service) Name() string {
	return "queue-worker"
}

// Start 启动队列消费与超时巡检
func (s *Service) Start(ctx context.Context) error {
	go s.runOverdueTicker()
	logger.Infow("worker_started",
		"concurrency", s.container.Config.Queue.Concurrency,
		"overdue_check_interval", overdueCheckInterval.String(),
	)
	return s.server.Run(s.mux)
}

// Stop 停止队列消费
func (s *Service) Stop(ctx context.Context) error {
	close(s.stopOverdue)
	s.server.Shutdown()
	return nil
}

// runOverdueTicker 周期性投递配送超时巡检任务
func (s *Service) runOverdueTicker() {
	ticker := time.NewTicker(overdueCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopOverdue:
			return
		case <-ticker.C:
			payload := queue.DeliveryOverduePayload{
				OverdueAfterMinutes: s.container.Config.Delivery.OverdueAfterMinutes,
			}
			if err := s.container.QueueClient.EnqueueDeliveryOverdueCheck(payload); err != nil {
				logger.Errorw("delivery_overdue_enqueue_failed", "error", err)
			}
		}
	}
}
