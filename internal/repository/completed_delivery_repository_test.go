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

func setupCompletedRepositoryTest(t *testing.T) (*GormCompletedDeliveryRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:completed_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.DeliveryOrder{},
		&models.CompletedDelivery{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCompletedDeliveryRepository(db), db
}

func TestCompletedDeliveryRepositoryAppendKeepsDuplicates(t *testing.T) {
	repo, db := setupCompletedRepositoryTest(t)

	order := models.DeliveryOrder{
		OrderNo:         "FT20260830101",
		Status:          constants.DeliveryStatusCompleted,
		StatusChangedAt: time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 同一订单追加两条完成记录，两条都必须保留
	for i := 0; i < 2; i++ {
		record := models.CompletedDelivery{
			OrderID:  order.ID,
			OrderNo:  order.OrderNo,
			Distance: models.NewDistanceFromDecimal(decimal.NewFromFloat(8.4)),
		}
		if err := repo.Append(&record); err != nil {
			t.Fatalf("append record %d failed: %v", i, err)
		}
	}

	records, err := repo.ListByOrder(order.ID)
	if err != nil {
		t.Fatalf("list records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 completion records, got=%d", len(records))
	}
}

func TestCompletedDeliveryRepositoryCountSince(t *testing.T) {
	repo, _ := setupCompletedRepositoryTest(t)
	now := time.Now()
	driverID := uint(7)

	old := models.CompletedDelivery{
		OrderID:     1,
		OrderNo:     "FT20260830102",
		DriverID:    &driverID,
		CompletedAt: now.Add(-48 * time.Hour),
	}
	recent := models.CompletedDelivery{
		OrderID:     2,
		OrderNo:     "FT20260830103",
		DriverID:    &driverID,
		CompletedAt: now.Add(-1 * time.Hour),
	}
	if err := repo.Append(&old); err != nil {
		t.Fatalf("append old record failed: %v", err)
	}
	if err := repo.Append(&recent); err != nil {
		t.Fatalf("append recent record failed: %v", err)
	}

	count, err := repo.CountSince(driverID, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("count since failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 recent completion, got=%d", count)
	}
}
