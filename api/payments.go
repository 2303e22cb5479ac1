package api

import (
	"errors"
	"net/http"

	"github.com/ShadowMirage/Freight-Management/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service booking.BookingUseCase
}

type paymentWebhookPayload struct {
	ReferenceID string `json:"reference_id" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

func NewPaymentHandler(service booking.BookingUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/webhook", h.webhook)
}

// webhook acknowledges every delivery with one of ignored/success/idempotent;
// the provider must not retry on any of the three.
func (h *PaymentHandler) webhook(c *gin.Context) {
	var payload paymentWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ack, err := h.service.ConfirmPayment(c.Request.Context(), payload.ReferenceID, payload.Status)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(ack)})
}
