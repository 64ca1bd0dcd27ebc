package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type captureNotifier struct {
	events []DeliveryEvent
}

func (n *captureNotifier) Notify(event DeliveryEvent) {
	n.events = append(n.events, event)
}

func (n *captureNotifier) countByEvent(event string) int {
	count := 0
	for _, e := range n.events {
		if e.Event == event {
			count++
		}
	}
	return count
}

func setupDeliveryServiceTest(t *testing.T, cfg *config.Config) (*DeliveryService, *captureNotifier, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:delivery_svc_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	if cfg == nil {
		cfg = &config.Config{}
	}
	notifier := &captureNotifier{}
	svc := NewDeliveryService(
		cfg,
		repository.NewOrderRepository(db),
		repository.NewNoteRepository(db),
		repository.NewCompletedDeliveryRepository(db),
		notifier,
	)
	return svc, notifier, db
}

func TestUpdateOrderStatusCreatesUnknownOrderAsPendingFirst(t *testing.T) {
	svc, _, _ := setupDeliveryServiceTest(t, nil)

	order, err := svc.GetOrderStatus("FT-NEW-001")
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if order.Status != constants.DeliveryStatusPending {
		t.Fatalf("unknown order should start pending, got=%s", order.Status)
	}
}

func TestUpdateOrderStatusOverwritesWithoutTransitionCheckByDefault(t *testing.T) {
	svc, notifier, _ := setupDeliveryServiceTest(t, nil)

	// 默认宽松模式：completed 之后仍可被覆盖回 pending
	if _, err := svc.UpdateOrderStatus("FT-OVR-001", constants.DeliveryStatusCompleted, nil); err != nil {
		t.Fatalf("set completed failed: %v", err)
	}
	order, err := svc.UpdateOrderStatus("FT-OVR-001", constants.DeliveryStatusPending, nil)
	if err != nil {
		t.Fatalf("overwrite back to pending failed: %v", err)
	}
	if order.Status != constants.DeliveryStatusPending {
		t.Fatalf("expected pending after overwrite, got=%s", order.Status)
	}
	if notifier.countByEvent(constants.NotifyEventStatusChanged) != 2 {
		t.Fatalf("expected 2 status change events, got=%d", notifier.countByEvent(constants.NotifyEventStatusChanged))
	}
}

func TestUpdateOrderStatusStrictModeRejectsIllegalTransition(t *testing.T) {
	cfg := &config.Config{}
	cfg.Delivery.StrictTransitions = true
	svc, _, _ := setupDeliveryServiceTest(t, cfg)

	if _, err := svc.UpdateOrderStatus("FT-STRICT-001", constants.DeliveryStatusCompleted, nil); err != ErrInvalidTransition {
		t.Fatalf("pending->completed should be rejected in strict mode, got=%v", err)
	}
	if _, err := svc.StartDelivery("FT-STRICT-001", nil); err != nil {
		t.Fatalf("pending->in-progress should pass: %v", err)
	}
	if _, err := svc.CompleteDelivery("FT-STRICT-001", nil); err != nil {
		t.Fatalf("in-progress->completed should pass: %v", err)
	}
	if _, err := svc.StartDelivery("FT-STRICT-001", nil); err != ErrInvalidTransition {
		t.Fatalf("completed is terminal in strict mode, got=%v", err)
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := setupDeliveryServiceTest(t, nil)
	if _, err := svc.UpdateOrderStatus("FT-BAD-001", "teleported", nil); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got=%v", err)
	}
}

func TestCompleteDeliveryTwiceAppendsDuplicateRecords(t *testing.T) {
	svc, notifier, db := setupDeliveryServiceTest(t, nil)

	if _, err := svc.CompleteDelivery("FT-DUP-001", nil); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := svc.CompleteDelivery("FT-DUP-001", nil); err != nil {
		t.Fatalf("second completion failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CompletedDelivery{}).Where("order_no = ?", "FT-DUP-001").Count(&count).Error; err != nil {
		t.Fatalf("count records failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("duplicate completion must append duplicate record, got=%d", count)
	}
	if notifier.countByEvent(constants.NotifyEventCompleted) != 2 {
		t.Fatalf("expected 2 completion events, got=%d", notifier.countByEvent(constants.NotifyEventCompleted))
	}
}

func TestAddOrderNoteRejectsEmptyAndKeepsOrder(t *testing.T) {
	svc, _, _ := setupDeliveryServiceTest(t, nil)

	if _, err := svc.AddOrderNote("FT-NOTE-001", "   ", nil); err != ErrNoteTextEmpty {
		t.Fatalf("blank note should be rejected, got=%v", err)
	}
	for _, text := range []string{"left at door", "customer called", "gate code 4721"} {
		if _, err := svc.AddOrderNote("FT-NOTE-001", text, nil); err != nil {
			t.Fatalf("add note %q failed: %v", text, err)
		}
	}

	notes, err := svc.GetOrderNotes("FT-NOTE-001")
	if err != nil {
		t.Fatalf("get notes failed: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got=%d", len(notes))
	}
	if notes[0].Text != "left at door" || notes[2].Text != "gate code 4721" {
		t.Fatalf("notes out of order")
	}
}

func TestAddAttachmentTargetsLastNote(t *testing.T) {
	svc, _, _ := setupDeliveryServiceTest(t, nil)

	if _, err := svc.AddOrderNote("FT-ATT-001", "first", nil); err != nil {
		t.Fatalf("add first note failed: %v", err)
	}
	if _, err := svc.AddOrderNote("FT-ATT-001", "second", nil); err != nil {
		t.Fatalf("add second note failed: %v", err)
	}
	attachment, err := svc.AddAttachment("FT-ATT-001", constants.AttachmentTypePhoto, "https://cdn.example.com/p.jpg", "", nil)
	if err != nil {
		t.Fatalf("add attachment failed: %v", err)
	}

	notes, err := svc.GetOrderNotes("FT-ATT-001")
	if err != nil {
		t.Fatalf("get notes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("attachment must not add a note when one exists, got=%d notes", len(notes))
	}
	last := notes[len(notes)-1]
	if attachment.NoteID != last.ID {
		t.Fatalf("attachment should target last note: got note_id=%d want=%d", attachment.NoteID, last.ID)
	}
	if len(last.Attachments) != 1 || last.Attachments[0].Type != constants.AttachmentTypePhoto {
		t.Fatalf("expected photo attachment on last note")
	}
}

func TestAddAttachmentSynthesizesCarrierNoteWhenNoneExists(t *testing.T) {
	svc, _, _ := setupDeliveryServiceTest(t, nil)

	if _, err := svc.AddAttachment("FT-ATT-002", constants.AttachmentTypePhoto, "https://cdn.example.com/p.jpg", "", nil); err != nil {
		t.Fatalf("add photo attachment failed: %v", err)
	}
	notes, err := svc.GetOrderNotes("FT-ATT-002")
	if err != nil {
		t.Fatalf("get notes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 synthesized note, got=%d", len(notes))
	}
	if notes[0].Text != "Added photo" {
		t.Fatalf("unexpected carrier note text: %q", notes[0].Text)
	}

	// note 类型附件用内容本身做载体备注
	if _, err := svc.AddAttachment("FT-ATT-003", constants.AttachmentTypeNote, "", "fragile package", nil); err != nil {
		t.Fatalf("add note attachment failed: %v", err)
	}
	notes, err = svc.GetOrderNotes("FT-ATT-003")
	if err != nil {
		t.Fatalf("get notes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "fragile package" {
		t.Fatalf("note attachment should carry its content, got=%v", notes)
	}
}

func TestAddAttachmentRejectsUnknownType(t *testing.T) {
	svc, _, _ := setupDeliveryServiceTest(t, nil)
	if _, err := svc.AddAttachment("FT-ATT-004", "hologram", "", "", nil); err != ErrInvalidAttachment {
		t.Fatalf("expected ErrInvalidAttachment, got=%v", err)
	}
}

func TestReportIssueMarksFailedAndRecordsReason(t *testing.T) {
	svc, notifier, _ := setupDeliveryServiceTest(t, nil)

	order, err := svc.ReportIssue("FT-ISS-001", "customer unreachable", nil)
	if err != nil {
		t.Fatalf("report issue failed: %v", err)
	}
	if order.Status != constants.DeliveryStatusFailed {
		t.Fatalf("issue should mark order failed, got=%s", order.Status)
	}

	notes, err := svc.GetOrderNotes("FT-ISS-001")
	if err != nil {
		t.Fatalf("get notes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "Issue: customer unreachable" {
		t.Fatalf("expected issue note, got=%v", notes)
	}
	if notifier.countByEvent(constants.NotifyEventIssueReported) != 1 {
		t.Fatalf("expected 1 issue event")
	}
}

func TestMarkOverdueInProgress(t *testing.T) {
	svc, notifier, db := setupDeliveryServiceTest(t, nil)

	stale := models.DeliveryOrder{
		OrderNo:         "FT-OVD-001",
		Status:          constants.DeliveryStatusInProgress,
		StatusChangedAt: time.Now().Add(-4 * time.Hour),
	}
	fresh := models.DeliveryOrder{
		OrderNo:         "FT-OVD-002",
		Status:          constants.DeliveryStatusInProgress,
		StatusChangedAt: time.Now().Add(-5 * time.Minute),
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create stale order failed: %v", err)
	}
	if err := db.Create(&fresh).Error; err != nil {
		t.Fatalf("create fresh order failed: %v", err)
	}

	marked, err := svc.MarkOverdueInProgress(2 * time.Hour)
	if err != nil {
		t.Fatalf("mark overdue failed: %v", err)
	}
	if marked != 1 {
		t.Fatalf("expected 1 marked order, got=%d", marked)
	}

	got, err := svc.GetOrderStatus("FT-OVD-001")
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if got.Status != constants.DeliveryStatusDelayed {
		t.Fatalf("stale order should be delayed, got=%s", got.Status)
	}
	if notifier.countByEvent(constants.NotifyEventStatusChanged) != 1 {
		t.Fatalf("expected 1 status change event")
	}
}

func TestDeliveryLifecycleScenario(t *testing.T) {
	svc, _, db := setupDeliveryServiceTest(t, nil)
	orderNo := "FT-LIFE-001"

	if _, err := svc.StartDelivery(orderNo, nil); err != nil {
		t.Fatalf("start delivery failed: %v", err)
	}
	order, err := svc.GetOrderStatus(orderNo)
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if order.Status != constants.DeliveryStatusInProgress {
		t.Fatalf("expected in-progress, got=%s", order.Status)
	}
	if order.StartedAt == nil {
		t.Fatalf("expected started_at to be set")
	}

	if _, err := svc.AddOrderNote(orderNo, "on the way", nil); err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if _, err := svc.AddAttachment(orderNo, constants.AttachmentTypePhoto, "https://cdn.example.com/door.jpg", "", nil); err != nil {
		t.Fatalf("add attachment failed: %v", err)
	}
	if _, err := svc.CompleteDelivery(orderNo, nil); err != nil {
		t.Fatalf("complete delivery failed: %v", err)
	}

	order, err = svc.GetOrderStatus(orderNo)
	if err != nil {
		t.Fatalf("get status failed: %v", err)
	}
	if order.Status != constants.DeliveryStatusCompleted {
		t.Fatalf("expected completed, got=%s", order.Status)
	}
	if order.CompletedAt == nil {
		t.Fatalf("expected completed_at to be set")
	}

	var count int64
	if err := db.Model(&models.CompletedDelivery{}).Where("order_no = ?", orderNo).Count(&count).Error; err != nil {
		t.Fatalf("count completion records failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 completion record, got=%d", count)
	}
}
