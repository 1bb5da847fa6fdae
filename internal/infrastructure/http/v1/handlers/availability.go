package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
	"roomstock/internal/domain/availability"
)

// AvailabilityHandler handles the read-only stay availability query.
type AvailabilityHandler struct {
	*BaseHandler
	service *availability.Service
}

// NewAvailabilityHandler creates a new availability handler.
func NewAvailabilityHandler(base *BaseHandler, service *availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{BaseHandler: base, service: service}
}

// Get handles GET /availability?roomTypeId=&checkIn=&checkOut=&roomCount=
func (h *AvailabilityHandler) Get(c *gin.Context) {
	roomTypeID, err := id.Parse(c.Query("roomTypeId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid roomTypeId"))
		return
	}

	checkIn, err := types.ParseDay(c.Query("checkIn"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid checkIn, want YYYY-MM-DD"))
		return
	}

	checkOut, err := types.ParseDay(c.Query("checkOut"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid checkOut, want YYYY-MM-DD"))
		return
	}

	roomCount := h.parseIntQuery(c, "roomCount", 1)

	result, err := h.service.GetAvailability(c.Request.Context(), roomTypeID, checkIn, checkOut, roomCount)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

func (h *AvailabilityHandler) parseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}
