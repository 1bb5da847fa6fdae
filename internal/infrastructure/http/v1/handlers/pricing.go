package handlers

import (
	"github.com/gin-gonic/gin"

	"roomstock/internal/domain/pricing"
	"roomstock/internal/infrastructure/http/v1/dto"
)

// PricingHandler handles HTTP requests for batch price adjustment.
type PricingHandler struct {
	*BaseHandler
	service *pricing.Service
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(base *BaseHandler, service *pricing.Service) *PricingHandler {
	return &PricingHandler{BaseHandler: base, service: service}
}

// Adjust handles POST /prices/adjust
func (h *PricingHandler) Adjust(c *gin.Context) {
	var req dto.PriceAdjustRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		h.Error(c, err)
		return
	}

	adj := req.ToAdjustment()
	ctx := c.Request.Context()

	if req.Filter != nil {
		filter, err := req.Filter.ToFilter()
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, h.service.ApplyToFilter(ctx, filter, adj))
		return
	}

	ids, err := parseUnitIDs(req.UnitIDs)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.service.ApplyToUnits(ctx, ids, adj))
}
