package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShadowMirage/Freight-Management/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func webhookContext(t *testing.T, payload paymentWebhookPayload) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(payload)
	c.Request = httptest.NewRequest("POST", "/payments/webhook", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestPaymentHandler_webhook(t *testing.T) {
	testCases := []struct {
		name       string
		ack        booking.Ack
		err        error
		wantCode   int
		wantStatus string
	}{
		{"success", booking.AckSuccess, nil, http.StatusOK, "success"},
		{"replay is idempotent", booking.AckIdempotent, nil, http.StatusOK, "idempotent"},
		{"non-paid status ignored", booking.AckIgnored, nil, http.StatusOK, "ignored"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewPaymentHandler(mockService)
			payload := paymentWebhookPayload{ReferenceID: "BKG-12345678", Status: "PAID"}
			w, c := webhookContext(t, payload)

			mockService.On("ConfirmPayment", c.Request.Context(), payload.ReferenceID, payload.Status).
				Return(tc.ack, tc.err).Once()

			handler.webhook(c)

			assert.Equal(t, tc.wantCode, w.Code)

			var response map[string]string
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.wantStatus, response["status"])
			mockService.AssertExpectations(t)
		})
	}
}

func TestPaymentHandler_webhook_UnknownReference(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewPaymentHandler(mockService)
	payload := paymentWebhookPayload{ReferenceID: "BKG-DEADBEEF", Status: "PAID"}
	w, c := webhookContext(t, payload)

	mockService.On("ConfirmPayment", c.Request.Context(), payload.ReferenceID, payload.Status).
		Return(booking.Ack(""), booking.ErrBookingNotFound).Once()

	handler.webhook(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_webhook_BadPayload(t *testing.T) {
	handler := NewPaymentHandler(&MockBookingUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/payments/webhook", bytes.NewReader([]byte(`{"status":"PAID"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.webhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
