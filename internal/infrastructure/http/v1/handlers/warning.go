package handlers

import (
	"github.com/gin-gonic/gin"

	"roomstock/internal/domain/warning"
	"roomstock/internal/infrastructure/http/v1/dto"
)

// WarningHandler handles HTTP requests for the low-stock warning dispatcher.
type WarningHandler struct {
	*BaseHandler
	dispatcher *warning.Dispatcher
}

// NewWarningHandler creates a new warning handler.
func NewWarningHandler(base *BaseHandler, dispatcher *warning.Dispatcher) *WarningHandler {
	return &WarningHandler{BaseHandler: base, dispatcher: dispatcher}
}

// Check handles POST /warnings/check
func (h *WarningHandler) Check(c *gin.Context) {
	var req dto.SyncRequest
	if !h.BindJSON(c, &req) {
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.dispatcher.CheckAndSendWarnings(c.Request.Context(), date))
}
