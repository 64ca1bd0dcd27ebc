package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/queue"
	"github.com/fleettrack/internal/repository"
	"github.com/fleettrack/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_consumer_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Driver{},
		&models.DeliveryOrder{},
		&models.OrderNote{},
		&models.Attachment{},
		&models.CompletedDelivery{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{
		Delivery: config.DeliveryConfig{
			OverdueAfterMinutes: 120,
			NoteMaxLength:       2000,
		},
	}
	deliveryService := service.NewDeliveryService(
		cfg,
		repository.NewOrderRepository(db),
		repository.NewNoteRepository(db),
		repository.NewCompletedDeliveryRepository(db),
		service.NopNotifier{},
	)
	notificationService := service.NewNotificationService(repository.NewNotificationRepository(db))
	return NewConsumer(cfg, deliveryService, notificationService), db
}

func TestConsumerHandleDeliveryNotifyPersistsNotification(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	task, err := queue.NewDeliveryNotifyTask(queue.DeliveryNotifyPayload{
		Event:     constants.NotifyEventStatusChanged,
		OrderNo:   "FT20260830001",
		OldStatus: constants.DeliveryStatusPending,
		NewStatus: constants.DeliveryStatusInProgress,
		At:        time.Now().Unix(),
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	if err := consumer.HandleDeliveryNotify(context.Background(), task); err != nil {
		t.Fatalf("handle notify failed: %v", err)
	}

	var notifications []models.Notification
	if err := db.Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got=%d", len(notifications))
	}
	if notifications[0].OrderNo != "FT20260830001" {
		t.Fatalf("unexpected order_no: %s", notifications[0].OrderNo)
	}
	if notifications[0].NewStatus != constants.DeliveryStatusInProgress {
		t.Fatalf("unexpected new_status: %s", notifications[0].NewStatus)
	}
}

func TestConsumerHandleDeliveryNotifyInvalidPayloadIsDropped(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskDeliveryNotify, []byte("not-json"))
	if err := consumer.HandleDeliveryNotify(context.Background(), task); err != nil {
		t.Fatalf("expected invalid payload to be dropped without error, got=%v", err)
	}

	var count int64
	if err := db.Model(&models.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("count notifications failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no notifications, got=%d", count)
	}
}

func TestConsumerHandleDeliveryOverdueMarksStaleOrders(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	stale := &models.DeliveryOrder{
		OrderNo:         "FT20260830002",
		Status:          constants.DeliveryStatusInProgress,
		StatusChangedAt: time.Now().Add(-3 * time.Hour),
	}
	fresh := &models.DeliveryOrder{
		OrderNo:         "FT20260830003",
		Status:          constants.DeliveryStatusInProgress,
		StatusChangedAt: time.Now().Add(-10 * time.Minute),
	}
	if err := db.Create(stale).Error; err != nil {
		t.Fatalf("create stale order failed: %v", err)
	}
	if err := db.Create(fresh).Error; err != nil {
		t.Fatalf("create fresh order failed: %v", err)
	}

	task, err := queue.NewDeliveryOverdueTask(queue.DeliveryOverduePayload{OverdueAfterMinutes: 120})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.HandleDeliveryOverdue(context.Background(), task); err != nil {
		t.Fatalf("handle overdue failed: %v", err)
	}

	var reloadedStale, reloadedFresh models.DeliveryOrder
	if err := db.First(&reloadedStale, stale.ID).Error; err != nil {
		t.Fatalf("reload stale order failed: %v", err)
	}
	if err := db.First(&reloadedFresh, fresh.ID).Error; err != nil {
		t.Fatalf("reload fresh order failed: %v", err)
	}
	if reloadedStale.Status != constants.DeliveryStatusDelayed {
		t.Fatalf("expected stale order delayed, got=%s", reloadedStale.Status)
	}
	if reloadedFresh.Status != constants.DeliveryStatusInProgress {
		t.Fatalf("expected fresh order untouched, got=%s", reloadedFresh.Status)
	}
}
