package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pressdesk/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.FromOrder(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/orders. The response carries the payment record
// opened for the order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithError(c, err)
		return
	}
	order, payment, err := h.facade.PlaceOrder(c.Request.Context(), req.Draft())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PlacedOrder{
		Order:   dto.FromOrder(*order),
		Payment: dto.FromPayment(*payment),
	})
}

// Update handles PATCH /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.OrderPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), req.Patch()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
