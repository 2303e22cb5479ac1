package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/ShadowMirage/Freight-Management/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Reserve(ctx context.Context, input booking.ReserveInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ConfirmPayment(ctx context.Context, referenceID, status string) (booking.Ack, error) {
	args := m.Called(ctx, referenceID, status)
	return args.Get(0).(booking.Ack), args.Error(1)
}

func (m *MockBookingUseCase) ExpireOverdue(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Get(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.ReserveInput{TruckID: "truck-1", LoadID: "load-1", Price: 100}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Booking{
		ID:            "b1",
		TruckID:       "truck-1",
		LoadID:        "load-1",
		Price:         100,
		Status:        domain.BookingStatusInitiated,
		PaymentStatus: domain.PaymentStatusPending,
		ReferenceID:   "BKG-12345678",
		PaymentLink:   "https://pay.example.com/freight/BKG-12345678",
	}

	mockService.On("Reserve", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "BKG-12345678", response.ReferenceID)
	assert.Equal(t, string(domain.BookingStatusInitiated), response.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), response.PaymentStatus)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ResourceUnavailable(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.ReserveInput{TruckID: "truck-1", LoadID: "load-1", Price: 100}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Reserve", c.Request.Context(), input).Return(nil, repository.ErrResourceUnavailable)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no longer available")
}

func TestBookingHandler_create_InvalidResource(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.ReserveInput{TruckID: "truck-x", LoadID: "load-x", Price: 100}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Reserve", c.Request.Context(), input).Return(nil, repository.ErrResourceNotFound)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Truck or Load.")
}

func TestBookingHandler_get_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/bookings/missing", nil)

	mockService.On("Get", c.Request.Context(), "missing").Return(nil, booking.ErrBookingNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
