package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fleettrack/internal/cache"
	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/repository"
)

const completedTodayCacheKey = "delivery:completed_today"

// DeliveryService 配送动作服务
// 司机端的全部配送操作（开始、完成、上报异常、改状态、记备注、传附件）都走这里
type DeliveryService struct {
	cfg           *config.Config
	orderRepo     repository.OrderRepository
	noteRepo      repository.NoteRepository
	completedRepo repository.CompletedDeliveryRepository
	notifier      Notifier
}

// NewDeliveryService 创建配送动作服务
func NewDeliveryService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	noteRepo repository.NoteRepository,
	completedRepo repository.CompletedDeliveryRepository,
	notifier Notifier,
) *DeliveryService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &DeliveryService{
		cfg:           cfg,
		orderRepo:     orderRepo,
		noteRepo:      noteRepo,
		completedRepo: completedRepo,
		notifier:      notifier,
	}
}

// ensureOrder 按订单编号取单，不存在时自动以 pending 创建
func (s *DeliveryService) ensureOrder(orderNo string) (*models.DeliveryOrder, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNoEmpty
	}
	order, err := s.orderRepo.EnsureByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus 更新配送状态
// 默认整单覆盖写；开启 strict_transitions 后按状态机校验
func (s *DeliveryService) UpdateOrderStatus(orderNo, status string, driverID *uint) (*models.DeliveryOrder, error) {
	normalized := NormalizeDeliveryStatus(status)
	if normalized == "" {
		return nil, ErrInvalidStatus
	}
	order, err := s.ensureOrder(orderNo)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if s.cfg != nil && s.cfg.Delivery.StrictTransitions && !IsLegalTransition(oldStatus, normalized) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{}
	now := time.Now()
	switch normalized {
	case constants.DeliveryStatusInProgress:
		if order.StartedAt == nil {
			updates["started_at"] = now
		}
	case constants.DeliveryStatusCompleted:
		updates["completed_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, normalized, updates); err != nil {
		return nil, err
	}
	order.Status = normalized
	order.StatusChangedAt = now

	logger.Infow("delivery_status_updated",
		"order_no", order.OrderNo,
		"old_status", oldStatus,
		"new_status", normalized,
	)
	s.notifier.Notify(DeliveryEvent{
		Event:     constants.NotifyEventStatusChanged,
		OrderNo:   order.OrderNo,
		DriverID:  driverID,
		OldStatus: oldStatus,
		NewStatus: normalized,
		At:        now,
	})
	return order, nil
}

// StartDelivery 开始配送（状态置为 in-progress）
func (s *DeliveryService) StartDelivery(orderNo string, driverID *uint) (*models.DeliveryOrder, error) {
	return s.UpdateOrderStatus(orderNo, constants.DeliveryStatusInProgress, driverID)
}

// CompleteDelivery 完成配送
// 状态置为 completed 并追加完成记录；重复完成会追加重复记录，不做去重
func (s *DeliveryService) CompleteDelivery(orderNo string, driverID *uint) (*models.DeliveryOrder, error) {
	order, err := s.ensureOrder(orderNo)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if s.cfg != nil && s.cfg.Delivery.StrictTransitions && !IsLegalTransition(oldStatus, constants.DeliveryStatusCompleted) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, constants.DeliveryStatusCompleted, map[string]interface{}{
		"completed_at": now,
	}); err != nil {
		return nil, err
	}
	order.Status = constants.DeliveryStatusCompleted
	order.CompletedAt = &now
	order.StatusChangedAt = now

	record := models.CompletedDelivery{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		DriverID:    driverID,
		Distance:    order.Distance,
		CompletedAt: now,
	}
	if err := s.completedRepo.Append(&record); err != nil {
		return nil, err
	}
	// 完成单量变化，失效今日完成缓存
	_ = cache.Del(context.Background(), completedTodayCacheKey)

	logger.Infow("delivery_completed",
		"order_no", order.OrderNo,
		"old_status", oldStatus,
		"record_id", record.ID,
	)
	s.notifier.Notify(DeliveryEvent{
		Event:     constants.NotifyEventCompleted,
		OrderNo:   order.OrderNo,
		DriverID:  driverID,
		OldStatus: oldStatus,
		NewStatus: constants.DeliveryStatusCompleted,
		At:        now,
	})
	return order, nil
}

// ReportIssue 上报配送异常（状态置为 failed 并记录异常备注）
func (s *DeliveryService) ReportIssue(orderNo, reason string, driverID *uint) (*models.DeliveryOrder, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrNoteTextEmpty
	}
	order, err := s.UpdateOrderStatus(orderNo, constants.DeliveryStatusFailed, driverID)
	if err != nil {
		return nil, err
	}
	if _, err := s.appendNote(order, "Issue: "+reason, driverID); err != nil {
		return nil, err
	}

	s.notifier.Notify(DeliveryEvent{
		Event:    constants.NotifyEventIssueReported,
		OrderNo:  order.OrderNo,
		DriverID: driverID,
		Detail:   reason,
		At:       time.Now(),
	})
	return order, nil
}

// AddOrderNote 为订单追加配送备注
func (s *DeliveryService) AddOrderNote(orderNo, text string, driverID *uint) (*models.OrderNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoteTextEmpty
	}
	if max := s.noteMaxLength(); max > 0 && len(text) > max {
		return nil, ErrNoteTooLong
	}
	order, err := s.ensureOrder(orderNo)
	if err != nil {
		return nil, err
	}

	note, err := s.appendNote(order, text, driverID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(DeliveryEvent{
		Event:    constants.NotifyEventNoteAdded,
		OrderNo:  order.OrderNo,
		DriverID: driverID,
		Detail:   text,
		At:       note.CreatedAt,
	})
	return note, nil
}

// appendNote 追加备注并推进订单的最近备注指针
func (s *DeliveryService) appendNote(order *models.DeliveryOrder, text string, driverID *uint) (*models.OrderNote, error) {
	note := models.OrderNote{
		OrderID:  order.ID,
		OrderNo:  order.OrderNo,
		DriverID: driverID,
		Text:     text,
	}
	if err := s.noteRepo.Append(&note); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetLastNote(order.ID, note.ID); err != nil {
		return nil, err
	}
	order.LastNoteID = &note.ID
	return &note, nil
}

// AddAttachment 为订单最近一条备注追加附件
// 订单还没有备注时自动补一条载体备注：note 类型用内容本身，其余类型用 "Added {type}"
func (s *DeliveryService) AddAttachment(orderNo, attachmentType, url, content string, driverID *uint) (*models.Attachment, error) {
	attachmentType = strings.ToLower(strings.TrimSpace(attachmentType))
	switch attachmentType {
	case constants.AttachmentTypePhoto, constants.AttachmentTypeDocument, constants.AttachmentTypeNote:
	default:
		return nil, ErrInvalidAttachment
	}

	order, err := s.ensureOrder(orderNo)
	if err != nil {
		return nil, err
	}

	noteID, err := s.resolveAttachmentNote(order, attachmentType, content, driverID)
	if err != nil {
		return nil, err
	}

	attachment := models.Attachment{
		NoteID:  noteID,
		Type:    attachmentType,
		URL:     strings.TrimSpace(url),
		Content: strings.TrimSpace(content),
	}
	if err := s.noteRepo.AppendAttachment(&attachment); err != nil {
		return nil, err
	}

	logger.Infow("delivery_attachment_added",
		"order_no", order.OrderNo,
		"note_id", noteID,
		"type", attachmentType,
	)
	s.notifier.Notify(DeliveryEvent{
		Event:    constants.NotifyEventAttachmentAdded,
		OrderNo:  order.OrderNo,
		DriverID: driverID,
		Detail:   attachmentType,
		At:       time.Now(),
	})
	return &attachment, nil
}

// resolveAttachmentNote 确定附件挂载的备注，必要时补建载体备注
func (s *DeliveryService) resolveAttachmentNote(order *models.DeliveryOrder, attachmentType, content string, driverID *uint) (uint, error) {
	if order.LastNoteID != nil {
		note, err := s.noteRepo.GetByID(*order.LastNoteID)
		if err != nil {
			return 0, err
		}
		if note != nil {
			return note.ID, nil
		}
	}

	text := fmt.Sprintf("Added %s", attachmentType)
	if attachmentType == constants.AttachmentTypeNote && strings.TrimSpace(content) != "" {
		text = strings.TrimSpace(content)
	}
	note, err := s.appendNote(order, text, driverID)
	if err != nil {
		return 0, err
	}
	return note.ID, nil
}

// GetOrderStatus 查询订单当前配送状态（未知订单自动建为 pending）
func (s *DeliveryService) GetOrderStatus(orderNo string) (*models.DeliveryOrder, error) {
	return s.ensureOrder(orderNo)
}

// GetOrderNotes 按记录顺序查询订单全部备注
func (s *DeliveryService) GetOrderNotes(orderNo string) ([]models.OrderNote, error) {
	order, err := s.orderRepo.GetByOrderNo(strings.TrimSpace(orderNo))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return []models.OrderNote{}, nil
	}
	return s.noteRepo.ListByOrder(order.ID)
}

// GetCompletedDeliveries 查询完成记录列表
func (s *DeliveryService) GetCompletedDeliveries(filter repository.CompletedListFilter) ([]models.CompletedDelivery, int64, error) {
	return s.completedRepo.List(filter)
}

// CompletedTodaySummary 今日完成概览
type CompletedTodaySummary struct {
	Count int64  `json:"count"`
	Date  string `json:"date"`
}

// GetCompletedToday 统计今日完成单量（优先走缓存）
func (s *DeliveryService) GetCompletedToday(ctx context.Context) (*CompletedTodaySummary, error) {
	var summary CompletedTodaySummary
	if hit, err := cache.GetJSON(ctx, completedTodayCacheKey, &summary); err == nil && hit {
		return &summary, nil
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.completedRepo.CountSince(0, dayStart)
	if err != nil {
		return nil, err
	}
	summary = CompletedTodaySummary{
		Count: count,
		Date:  dayStart.Format("2006-01-02"),
	}
	ttl := 60 * time.Second
	if s.cfg != nil && s.cfg.Delivery.CompletedCacheSeconds > 0 {
		ttl = time.Duration(s.cfg.Delivery.CompletedCacheSeconds) * time.Second
	}
	_ = cache.SetJSON(ctx, completedTodayCacheKey, summary, ttl)
	return &summary, nil
}

// MarkOverdueInProgress 巡检配送中超时订单并标记为 delayed，返回标记数量
func (s *DeliveryService) MarkOverdueInProgress(overdueAfter time.Duration) (int, error) {
	if overdueAfter <= 0 {
		return 0, nil
	}
	before := time.Now().Add(-overdueAfter)
	orders, err := s.orderRepo.ListOverdueInProgress(before)
	if err != nil {
		return 0, err
	}

	marked := 0
	for i := range orders {
		order := &orders[i]
		now := time.Now()
		if err := s.orderRepo.UpdateStatus(order.ID, constants.DeliveryStatusDelayed, nil); err != nil {
			logger.Errorw("delivery_overdue_mark_failed",
				"order_no", order.OrderNo,
				"error", err,
			)
			continue
		}
		marked++
		logger.Warnw("delivery_overdue_marked_delayed",
			"order_no", order.OrderNo,
			"status_changed_at", order.StatusChangedAt,
		)
		s.notifier.Notify(DeliveryEvent{
			Event:     constants.NotifyEventStatusChanged,
			OrderNo:   order.OrderNo,
			DriverID:  order.DriverID,
			OldStatus: constants.DeliveryStatusInProgress,
			NewStatus: constants.DeliveryStatusDelayed,
			Detail:    "overdue",
			At:        now,
		})
	}
	return marked, nil
}

func (s *DeliveryService) noteMaxLength() int {
	if s.cfg == nil {
		return 0
	}
	return s.cfg.Delivery.NoteMaxLength
}
