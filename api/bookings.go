package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/ShadowMirage/Freight-Management/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	TruckID string  `json:"truck_id" binding:"required"`
	LoadID  string  `json:"load_id" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

type bookingResponse struct {
	ID               string  `json:"id"`
	TruckID          string  `json:"truck_id"`
	LoadID           string  `json:"load_id"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"payment_status"`
	ReferenceID      string  `json:"booking_reference_id"`
	PaymentLink      string  `json:"payment_link"`
	PaymentExpiresAt string  `json:"payment_expires_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Reserve(c.Request.Context(), booking.ReserveInput{
		TruckID: req.TruckID,
		LoadID:  req.LoadID,
		Price:   req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrResourceNotFound), errors.Is(err, booking.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Truck or Load."})
		case errors.Is(err, repository.ErrResourceUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Truck or Load is no longer available."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) list(c *gin.Context) {
	limit, offset := pagination(c)
	bookings, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:               b.ID,
		TruckID:          b.TruckID,
		LoadID:           b.LoadID,
		Price:            b.Price,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		ReferenceID:      b.ReferenceID,
		PaymentLink:      b.PaymentLink,
		PaymentExpiresAt: b.PaymentExpiresAt.Format(time.RFC3339),
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
