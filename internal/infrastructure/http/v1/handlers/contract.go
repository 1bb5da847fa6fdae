package handlers

import (
	"github.com/gin-gonic/gin"

	"roomstock/internal/domain/contract"
	"roomstock/internal/infrastructure/http/v1/dto"
)

// ContractHandler handles HTTP requests for the contract lifecycle.
type ContractHandler struct {
	*BaseHandler
	service *contract.Service
}

// NewContractHandler creates a new contract handler.
func NewContractHandler(base *BaseHandler, service *contract.Service) *ContractHandler {
	return &ContractHandler{BaseHandler: base, service: service}
}

// Create handles POST /contracts
func (h *ContractHandler) Create(c *gin.Context) {
	var req dto.CreateContractRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, created.ID.String())
}

// Approve handles POST /contracts/:id/approve
func (h *ContractHandler) Approve(c *gin.Context) {
	contractID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	approved, err := h.service.Approve(c.Request.Context(), contractID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromContract(approved))
}

// Terminate handles POST /contracts/:id/terminate
func (h *ContractHandler) Terminate(c *gin.Context) {
	contractID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.TerminateContractRequest
	if !h.BindJSON(c, &req) {
		return
	}

	terminated, err := h.service.Terminate(c.Request.Context(), contractID, req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromContract(terminated))
}

// Get handles GET /contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	contractID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), contractID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromContract(found))
}
