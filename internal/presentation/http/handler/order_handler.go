package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/domain/enum"
	"github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billing-api/internal/presentation/http/dto/response"
	"github.com/sangkips/billing-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Commit places the current bill
// @Summary Place order
// @Description Persist every line of the current bill as one order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body request.CommitOrderRequest true "Payment type"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Commit(c *gin.Context) {
	var req request.CommitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orderService.Commit(c.Request.Context(), req.PaymentType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", result)
}

// List returns order history
// @Summary Order history
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param bill_number query string false "Filter by bill number"
// @Param date query string false "Filter by day (DD-MM-YYYY)"
// @Param payment_type query string false "Filter by payment type"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		BillNumber: req.BillNumber,
		Date:       req.Date,
		SortOrder:  req.SortOrder,
	}
	params.Pagination.Validate()

	if req.PaymentType != "" {
		paymentType, err := enum.ParsePaymentType(req.PaymentType)
		if err != nil {
			response.BadRequest(c, "Invalid payment type")
			return
		}
		params.PaymentType = &paymentType
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get returns every row of one bill
// @Summary Get bill
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param bill_number path string true "Bill number"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{bill_number} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	rows, err := h.orderService.GetBill(c.Request.Context(), c.Param("bill_number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", gin.H{
		"bill_number": c.Param("bill_number"),
		"rows":        rows,
	})
}
