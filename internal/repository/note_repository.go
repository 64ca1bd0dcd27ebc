package repository

import (
	"errors"

	"github.com/fleettrack/internal/models"

	"gorm.io/gorm"
)

// NoteRepository 配送备注数据访问接口
type NoteRepository interface {
	Append(note *models.OrderNote) error
	GetByID(id uint) (*models.OrderNote, error)
	ListByOrder(orderID uint) ([]models.OrderNote, error)
	AppendAttachment(attachment *models.Attachment) error
	ListAttachments(noteID uint) ([]models.Attachment, error)
	WithTx(tx *gorm.DB) *GormNoteRepository
}

// GormNoteRepository GORM 实现
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建配送备注仓库
func NewNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// WithTx 绑定事务
func (r *GormNoteRepository) WithTx(tx *gorm.DB) *GormNoteRepository {
	if tx == nil {
		return r
	}
	return &GormNoteRepository{db: tx}
}

// Append 追加配送备注
func (r *GormNoteRepository) Append(note *models.OrderNote) error {
	return r.db.Create(note).Error
}

// GetByID 根据 ID 获取备注
func (r *GormNoteRepository) GetByID(id uint) (*models.OrderNote, error) {
	var note models.OrderNote
	if err := r.db.Preload("Attachments").First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// ListByOrder 按记录顺序查询订单的全部备注
func (r *GormNoteRepository) ListByOrder(orderID uint) ([]models.OrderNote, error) {
	notes := make([]models.OrderNote, 0)
	err := r.db.
		Preload("Attachments").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// AppendAttachment 为备注追加附件
func (r *GormNoteRepository) AppendAttachment(attachment *models.Attachment) error {
	return r.db.Create(attachment).Error
}

// ListAttachments 查询备注的全部附件
func (r *GormNoteRepository) ListAttachments(noteID uint) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0)
	err := r.db.
		Where("note_id = ?", noteID).
		Order("id ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}
