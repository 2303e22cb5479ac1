package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/bookingref"
	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/ShadowMirage/Freight-Management/internal/kafka"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/google/uuid"
)

// Ack is the webhook acknowledgement. All three values mean "do not retry".
type Ack string

const (
	AckIgnored    Ack = "ignored"
	AckSuccess    Ack = "success"
	AckIdempotent Ack = "idempotent"
)

// PaidNotification is the payment-provider webhook status that triggers the
// confirmation transition; anything else is acknowledged and dropped.
const PaidNotification = "PAID"

type BookingUseCase interface {
	Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, referenceID, status string) (Ack, error)
	ExpireOverdue(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	paymentWindow      time.Duration
	paymentBaseURL     string
}

type ReserveInput struct {
	TruckID string  `json:"truck_id"`
	LoadID  string  `json:"load_id"`
	Price   float64 `json:"price"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	producer Producer,
	eventsTopic string,
	paymentWindow time.Duration,
	paymentBaseURL string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		producer:       producer,
		eventsTopic:    eventsTopic,
		paymentWindow:  paymentWindow,
		paymentBaseURL: paymentBaseURL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve places an exclusive hold on a truck/load pair for the payment
// window. Re-submitting the same pair returns the existing booking unchanged.
func (s *BookingService) Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	if input.TruckID == "" || input.LoadID == "" || input.Price <= 0 {
		return nil, ErrInvalidInput
	}

	reference := bookingref.Derive(input.TruckID, input.LoadID)

	// Unlocked idempotency lookup. An existing row is immutable for this
	// caller, so no lock is needed to return it.
	existing, err := s.bookings.GetByReference(ctx, reference)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	booking := &domain.Booking{
		ID:               uuid.NewString(),
		TruckID:          input.TruckID,
		LoadID:           input.LoadID,
		Price:            input.Price,
		ReferenceID:      reference,
		PaymentLink:      fmt.Sprintf("%s/%s", s.paymentBaseURL, reference),
		PaymentExpiresAt: time.Now().Add(s.paymentWindow),
	}

	if err := s.bookings.CreateReservation(ctx, booking); err != nil {
		// Two first-time submissions can both pass the lookup above; the
		// unique constraint decides, and the loser gets the winner's row.
		if errors.Is(err, repository.ErrDuplicateReference) {
			return s.bookings.GetByReference(ctx, reference)
		}
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingReserved, booking)
	return booking, nil
}

// ConfirmPayment applies the webhook-triggered transition to PAID. Replayed
// deliveries and late deliveries for settled bookings return AckIdempotent.
func (s *BookingService) ConfirmPayment(ctx context.Context, referenceID, status string) (Ack, error) {
	if status != PaidNotification {
		return AckIgnored, nil
	}

	booking, applied, err := s.bookings.ConfirmPaid(ctx, referenceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrBookingNotFound
		}
		return "", err
	}
	if !applied {
		return AckIdempotent, nil
	}

	s.publish(ctx, kafka.EventBookingPaid, booking)
	return AckSuccess, nil
}

// ExpireOverdue runs one sweep cycle: every booking whose payment window
// lapsed while PENDING is expired in its own transaction and its resources
// released. A row that cannot be processed this cycle is left for the next.
func (s *BookingService) ExpireOverdue(ctx context.Context) ([]domain.Booking, error) {
	now := time.Now()
	refs, err := s.bookings.ListOverdueReferences(ctx, now)
	if err != nil {
		return nil, err
	}

	expired := make([]domain.Booking, 0, len(refs))
	for _, ref := range refs {
		booking, applied, err := s.bookings.ExpireOne(ctx, ref, now)
		if err != nil {
			log.Printf("expire booking %s: %v", ref, err)
			continue
		}
		if !applied {
			continue
		}
		expired = append(expired, *booking)
		s.publish(ctx, kafka.EventBookingExpired, booking)
	}
	return expired, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (s *BookingService) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

// publish is best effort: event loss is logged, never surfaced, so at no
// point does messaging decide the fate of a committed transaction.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		ReferenceID:      booking.ReferenceID,
		BookingID:        booking.ID,
		TruckID:          booking.TruckID,
		LoadID:           booking.LoadID,
		Price:            booking.Price,
		Status:           string(booking.Status),
		PaymentExpiresAt: booking.PaymentExpiresAt,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.ReferenceID, event); err != nil {
		log.Printf("publish %s for booking %s: %v", eventType, booking.ReferenceID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ReferenceID, event); err != nil {
			log.Printf("publish notification %s for booking %s: %v", eventType, booking.ReferenceID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
