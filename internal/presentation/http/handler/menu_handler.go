package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the full price list
// @Summary List menu
// @Tags menu
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu retrieved successfully", gin.H{"items": items})
}

// Create adds a new item to the menu
// @Summary Create menu item
// @Tags menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /menu [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), req.Name, req.UnitPrice)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update changes the name and/or price of a menu item
// @Summary Update menu item
// @Tags menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body request.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /menu/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), id, req.Name, req.UnitPrice)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Delete removes an item from the menu
// @Summary Delete menu item
// @Tags menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Quote computes menu price x quantity without touching the current bill
// @Summary Price quote
// @Tags menu
// @Security BearerAuth
// @Produce json
// @Param item query string true "Item name"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} response.APIResponse
// @Router /menu/quote [get]
func (h *MenuHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	quote, err := h.menuService.QuotePrice(c.Request.Context(), req.Item, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote computed successfully", quote)
}
