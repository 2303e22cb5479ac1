package domain

// FreightStatus is shared by trucks and loads.
type FreightStatus string

const (
	FreightStatusOpen      FreightStatus = "OPEN"
	FreightStatusReserved  FreightStatus = "RESERVED"
	FreightStatusBooked    FreightStatus = "BOOKED"
	FreightStatusCancelled FreightStatus = "CANCELLED"
)

type BookingStatus string

const (
	BookingStatusInitiated BookingStatus = "INITIATED"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusExpired   BookingStatus = "EXPIRED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusFailed    BookingStatus = "FAILED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

var freightTransitions = map[FreightStatus][]FreightStatus{
	FreightStatusOpen:     {FreightStatusReserved, FreightStatusCancelled},
	FreightStatusReserved: {FreightStatusBooked, FreightStatusOpen},
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusInitiated: {BookingStatusPaid, BookingStatusExpired, BookingStatusCancelled, BookingStatusFailed},
}

func (s FreightStatus) CanTransition(to FreightStatus) bool {
	for _, next := range freightTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further booking transition is permitted.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
