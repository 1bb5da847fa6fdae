package handlers

import (
	"github.com/gin-gonic/gin"

	"roomstock/internal/domain/summary"
	"roomstock/internal/infrastructure/http/v1/dto"
)

// SummaryHandler handles HTTP requests for the summary aggregator.
type SummaryHandler struct {
	*BaseHandler
	service *summary.Service
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(base *BaseHandler, service *summary.Service) *SummaryHandler {
	return &SummaryHandler{BaseHandler: base, service: service}
}

// Recompute handles POST /summaries/recompute
func (h *SummaryHandler) Recompute(c *gin.Context) {
	var req dto.RecomputeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	hotelID, roomTypeID, from, to, err := req.Parse()
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.service.RecomputeRange(c.Request.Context(), hotelID, roomTypeID, from, to))
}

// Sync handles POST /summaries/sync
func (h *SummaryHandler) Sync(c *gin.Context) {
	var req dto.SyncRequest
	if !h.BindJSON(c, &req) {
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.service.SyncAll(c.Request.Context(), date))
}

// Reclassify handles POST /summaries/reclassify
func (h *SummaryHandler) Reclassify(c *gin.Context) {
	var req dto.ReclassifyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.OK(c, h.service.ReclassifyAll(c.Request.Context(), req.ThresholdPercent))
}
