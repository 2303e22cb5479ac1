package notify

import (
	"context"
	"log"

	"github.com/ShadowMirage/Freight-Management/internal/kafka"
)

// Sender turns booking events into operator-facing notifications. Delivery is
// best effort; guarantees live with the channel provider, not here.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case kafka.EventBookingReserved:
		log.Printf("notify: booking %s reserved for truck %s and load %s, pay before %s",
			event.ReferenceID, event.TruckID, event.LoadID, event.PaymentExpiresAt.Format("15:04"))
	case kafka.EventBookingPaid:
		log.Printf("notify: booking %s confirmed, truck %s and load %s are booked",
			event.ReferenceID, event.TruckID, event.LoadID)
	case kafka.EventBookingExpired:
		log.Printf("notify: booking %s expired unpaid, truck %s and load %s are open again",
			event.ReferenceID, event.TruckID, event.LoadID)
	default:
		log.Printf("notify: unknown event type %q for booking %s", event.Type, event.ReferenceID)
	}
	return nil
}
