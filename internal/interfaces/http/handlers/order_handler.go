package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	"tradeport.backend/internal/interfaces/http/middleware"
	"tradeport.backend/internal/interfaces/http/response"
	"tradeport.backend/internal/usecases"
	"tradeport.backend/pkg/utils"
)

// OrderHandler handles buyer order endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
	}
}

// CreateOrder places an order
// POST /api/v1/buyer/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), buyerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// GetOrder returns one of the buyer's orders
// GET /api/v1/buyer/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	orderID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid order id"))
		return
	}

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), buyerID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// ListOrders returns the buyer's order history
// GET /api/v1/buyer/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	pagination := paginationFromQuery(c)
	orders, total, err := h.orderUsecase.ListOrders(c.Request.Context(), buyerID, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, orders, utils.CalculateMeta(total, pagination.Page, pagination.Limit))
}
