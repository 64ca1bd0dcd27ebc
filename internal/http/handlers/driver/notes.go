package driver

import (
	"github.com/fleettrack/internal/http/handlers/shared"
	"github.com/fleettrack/internal/http/response"

	"github.com/gin-gonic/gin"
)

// addNoteRequest 追加备注请求
type addNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// addAttachmentRequest 追加附件请求
type addAttachmentRequest struct {
	Type    string `json:"type" binding:"required"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// AddNote 为订单追加配送备注
func (h *Handler) AddNote(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	note, err := h.DeliveryService.AddOrderNote(c.Param("order_no"), req.Text, &driverID)
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, note)
}

// ListNotes 查询订单全部备注
func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.DeliveryService.GetOrderNotes(c.Param("order_no"))
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, notes)
}

// AddAttachment 为订单最近备注追加附件
func (h *Handler) AddAttachment(c *gin.Context) {
	driverID, ok := currentDriverID(c)
	if !ok {
		return
	}
	var req addAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	attachment, err := h.DeliveryService.AddAttachment(c.Param("order_no"), req.Type, req.URL, req.Content, &driverID)
	if err != nil {
		respondDeliveryActionError(c, err)
		return
	}
	response.Success(c, attachment)
}
