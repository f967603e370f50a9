package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pressdesk/internal/server/http/dto"
)

// PaymentHandler manages payment endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// List handles GET /api/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.facade.Payments(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.Payment, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.FromPayment(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Record handles POST /api/payments/:id/transactions.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.RecordPayment(c.Request.Context(), c.Param("id"), req.Amount, req.Method); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
