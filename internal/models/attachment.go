package models

import "time"

// Attachment 备注附件表
type Attachment struct {
	ID        uint      `gorm:"primarykey" json:"id"`           // 主键
	NoteID    uint      `gorm:"index;not null" json:"note_id"`  // 所属备注ID
	Type      string    `gorm:"type:varchar(20)" json:"type"`   // 附件类型（photo/document/note）
	URL       string    `gorm:"type:varchar(1000)" json:"url"`  // 附件地址（note 类型为空）
	Content   string    `gorm:"type:varchar(2000)" json:"content,omitempty"` // 文本内容（note 类型）
	CreatedAt time.Time `gorm:"index" json:"created_at"`        // 上传时间
}

// TableName 指定表名
func (Attachment) TableName() string {
	return "attachments"
}
