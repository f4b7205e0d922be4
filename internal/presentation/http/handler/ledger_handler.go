package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/response"
)

// LedgerHandler exposes the current bill being built at the till.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Get returns the current bill: lines, running total and bill number
// @Summary Current bill
// @Tags ledger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /ledger [get]
func (h *LedgerHandler) Get(c *gin.Context) {
	response.OK(c, "Current bill retrieved successfully", h.ledgerService.Snapshot())
}

// AddLine appends a line to the current bill
// @Summary Add line
// @Tags ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.AddLineRequest true "Line to add"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /ledger/lines [post]
func (h *LedgerHandler) AddLine(c *gin.Context) {
	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snapshot, err := h.ledgerService.AddLine(c.Request.Context(), req.Item, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Line added successfully", snapshot)
}

// UpdateLine changes the quantity of one line
// @Summary Update line
// @Tags ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Line ID"
// @Param request body request.UpdateLineRequest true "New quantity"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /ledger/lines/{id} [put]
func (h *LedgerHandler) UpdateLine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID")
		return
	}

	var req request.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snapshot, err := h.ledgerService.UpdateLine(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line updated successfully", snapshot)
}

// RemoveLines deletes the selected lines from the current bill
// @Summary Remove lines
// @Tags ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.RemoveLinesRequest true "Line IDs to remove"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /ledger/lines [delete]
func (h *LedgerHandler) RemoveLines(c *gin.Context) {
	var req request.RemoveLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snapshot, err := h.ledgerService.RemoveLines(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lines removed successfully", snapshot)
}

// Clear abandons the current bill and opens a fresh one
// @Summary New bill
// @Tags ledger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /ledger/clear [post]
func (h *LedgerHandler) Clear(c *gin.Context) {
	response.OK(c, "New bill opened", h.ledgerService.NewBill())
}
