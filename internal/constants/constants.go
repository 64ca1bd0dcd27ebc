package constants

// 配送状态常量
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusInProgress = "in-progress"
	DeliveryStatusCompleted  = "completed"
	DeliveryStatusFailed     = "failed"
	DeliveryStatusDelayed    = "delayed"
)

// DeliveryStatuses 全部合法配送状态
var DeliveryStatuses = []string{
	DeliveryStatusPending,
	DeliveryStatusInProgress,
	DeliveryStatusCompleted,
	DeliveryStatusFailed,
	DeliveryStatusDelayed,
}

// 附件类型常量
const (
	AttachmentTypePhoto    = "photo"
	AttachmentTypeDocument = "document"
	AttachmentTypeNote     = "note"
)

// 司机状态常量
const (
	DriverStatusActive   = "active"
	DriverStatusDisabled = "disabled"
)

// 司机车辆类型常量
const (
	VehicleTypeVan     = "van"
	VehicleTypeTruck   = "truck"
	VehicleTypeBike    = "bike"
	VehicleTypeScooter = "scooter"
)

// 通知事件常量
const (
	NotifyEventStatusChanged   = "delivery_status_changed"
	NotifyEventNoteAdded       = "delivery_note_added"
	NotifyEventAttachmentAdded = "delivery_attachment_added"
	NotifyEventIssueReported   = "delivery_issue_reported"
	NotifyEventCompleted       = "delivery_completed"
)

// 登录失败原因常量
const (
	LoginFailReasonBadRequest         = "bad_request"
	LoginFailReasonInvalidCredentials = "invalid_credentials"
	LoginFailReasonDriverDisabled     = "driver_disabled"
	LoginFailReasonCaptchaRequired    = "captcha_required"
	LoginFailReasonCaptchaInvalid     = "captcha_invalid"
)

// 队列常量
const (
	QueueDefault        = "default"
	TaskDeliveryNotify  = "delivery:notify"
	TaskDeliveryOverdue = "delivery:overdue_check"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "ft"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)
