package handlers

import (
	"github.com/gin-gonic/gin"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/domain/inventory"
	"roomstock/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles HTTP requests for inventory units: provisioning,
// reservation transitions, batch status mutation, and contract release.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{BaseHandler: base, service: service}
}

// Provision handles POST /inventory/provision
func (h *InventoryHandler) Provision(c *gin.Context) {
	var req dto.ProvisionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.service.Provision(c.Request.Context(), in))
}

// Get handles GET /inventory/units/:id
func (h *InventoryHandler) Get(c *gin.Context) {
	unitID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	unit, err := h.service.Get(c.Request.Context(), unitID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUnit(unit))
}

// Reserve handles POST /inventory/units/:id/reserve
func (h *InventoryHandler) Reserve(c *gin.Context) {
	unitID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Reserve(c.Request.Context(), unitID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "unit reserved")
}

// Release handles POST /inventory/units/:id/release
func (h *InventoryHandler) Release(c *gin.Context) {
	unitID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Release(c.Request.Context(), unitID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "unit released")
}

// BatchStatus handles POST /inventory/status
func (h *InventoryHandler) BatchStatus(c *gin.Context) {
	var req dto.BatchStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	filter, err := req.Filter.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.service.BatchSetStatus(c.Request.Context(), filter, inventory.UnitStatus(req.Status)))
}

// StatusByIDs handles POST /inventory/status/by-ids
func (h *InventoryHandler) StatusByIDs(c *gin.Context) {
	var req dto.StatusByIDsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ids, err := parseUnitIDs(req.UnitIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.service.SetStatusByIDs(c.Request.Context(), ids, inventory.UnitStatus(req.Status)))
}

// ClearContract handles POST /inventory/units/:id/clear-contract
func (h *InventoryHandler) ClearContract(c *gin.Context) {
	unitID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.OK(c, h.service.ClearContract(c.Request.Context(), unitID))
}

// ClearContractBatch handles POST /inventory/clear-contract
func (h *InventoryHandler) ClearContractBatch(c *gin.Context) {
	var req dto.ClearContractBatchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	filter, err := req.Filter.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.service.BulkClearContract(c.Request.Context(), filter))
}

// parseUnitIDs parses an explicit unit id list from a request.
func parseUnitIDs(raw []string) ([]id.ID, error) {
	ids := make([]id.ID, 0, len(raw))
	for _, r := range raw {
		parsed, err := id.Parse(r)
		if err != nil {
			return nil, apperror.NewValidation("invalid unit id").WithDetail("value", r)
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}
