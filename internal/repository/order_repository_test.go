package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Driver{},
		&models.DeliveryOrder{},
		&models.OrderNote{},
		&models.Attachment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func TestOrderRepositoryEnsureByOrderNoCreatesPendingOrder(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order, err := repo.EnsureByOrderNo("FT20260830001")
	if err != nil {
		t.Fatalf("ensure order failed: %v", err)
	}
	if order == nil {
		t.Fatalf("expected order to be created")
	}
	if order.Status != constants.DeliveryStatusPending {
		t.Fatalf("expected pending status, got=%s", order.Status)
	}

	again, err := repo.EnsureByOrderNo("FT20260830001")
	if err != nil {
		t.Fatalf("ensure existing order failed: %v", err)
	}
	if again.ID != order.ID {
		t.Fatalf("expected same order row, got id=%d want=%d", again.ID, order.ID)
	}
}

func TestOrderRepositoryUpdateStatusRefreshesChangeTime(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	past := time.Now().Add(-3 * time.Hour)
	order := models.DeliveryOrder{
		OrderNo:         "FT20260830002",
		Status:          constants.DeliveryStatusInProgress,
		Distance:        models.NewDistanceFromDecimal(decimal.NewFromFloat(12.5)),
		StatusChangedAt: past,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.UpdateStatus(order.ID, constants.DeliveryStatusDelayed, nil); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Status != constants.DeliveryStatusDelayed {
		t.Fatalf("expected delayed status, got=%s", got.Status)
	}
	if !got.StatusChangedAt.After(past) {
		t.Fatalf("expected status_changed_at to be refreshed")
	}
}

func TestOrderRepositoryListOverdueInProgress(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	now := time.Now()

	stale := models.DeliveryOrder{
		OrderNo:         "FT20260830003",
		Status:          constants.DeliveryStatusInProgress,
		StatusChangedAt: now.Add(-5 * time.Hour),
	}
	fresh := models.DeliveryOrder{
		OrderNo:         "FT20260830004",
		Status:          constants.DeliveryStatusInProgress,
		StatusChangedAt: now.Add(-10 * time.Minute),
	}
	done := models.DeliveryOrder{
		OrderNo:         "FT20260830005",
		Status:          constants.DeliveryStatusCompleted,
		StatusChangedAt: now.Add(-5 * time.Hour),
	}
	for _, o := range []*models.DeliveryOrder{&stale, &fresh, &done} {
		if err := db.Create(o).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	overdue, err := repo.ListOverdueInProgress(now.Add(-2 * time.Hour))
	if err != nil {
		t.Fatalf("list overdue failed: %v", err)
	}
	if len(overdue) != 1 {
		t.Fatalf("expected 1 overdue order, got=%d", len(overdue))
	}
	if overdue[0].OrderNo != stale.OrderNo {
		t.Fatalf("unexpected overdue order: %s", overdue[0].OrderNo)
	}
}

func TestNoteRepositoryListByOrderKeepsInsertionOrder(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	noteRepo := NewNoteRepository(db)

	order, err := repo.EnsureByOrderNo("FT20260830006")
	if err != nil {
		t.Fatalf("ensure order failed: %v", err)
	}

	for i, text := range []string{"first note", "second note", "third note"} {
		note := models.OrderNote{
			OrderID: order.ID,
			OrderNo: order.OrderNo,
			Text:    text,
		}
		if err := noteRepo.Append(&note); err != nil {
			t.Fatalf("append note %d failed: %v", i, err)
		}
	}

	notes, err := noteRepo.ListByOrder(order.ID)
	if err != nil {
		t.Fatalf("list notes failed: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got=%d", len(notes))
	}
	if notes[0].Text != "first note" || notes[2].Text != "third note" {
		t.Fatalf("notes out of order: %v", []string{notes[0].Text, notes[1].Text, notes[2].Text})
	}
}
