package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// CreateReservation is the atomic reservation transaction: ordered
	// blocking locks on the truck and load rows, post-lock OPEN re-check,
	// both resources to RESERVED and the booking row inserted, or nothing.
	CreateReservation(ctx context.Context, booking *domain.Booking) error

	// ConfirmPaid transitions booking/truck/load to PAID/BOOKED/BOOKED in one
	// transaction. applied=false means the idempotency guard fired or a
	// dependent row was gone; no state was changed.
	ConfirmPaid(ctx context.Context, reference string) (booking *domain.Booking, applied bool, err error)

	// ListOverdueReferences returns references of bookings whose payment
	// window lapsed while still PENDING. Unlocked; each candidate is
	// revisited under lock by ExpireOne.
	ListOverdueReferences(ctx context.Context, now time.Time) ([]string, error)

	// ExpireOne expires a single overdue booking in its own transaction,
	// acquiring the booking row with SKIP LOCKED so an in-flight payment
	// confirmation is never waited on. applied=false means the row was
	// locked elsewhere or no longer eligible.
	ExpireOne(ctx context.Context, reference string, now time.Time) (booking *domain.Booking, applied bool, err error)

	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, truck_id, load_id, price, status, payment_status, booking_reference_id, payment_link, payment_expires_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.TruckID, &b.LoadID, &b.Price, &b.Status, &b.PaymentStatus, &b.ReferenceID, &b.PaymentLink, &b.PaymentExpiresAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// freightRef names one of the two lockable resource rows.
type freightRef struct {
	table string
	id    string
}

// orderedRefs fixes the global lock order: the row with the lexicographically
// smaller id is always locked first, regardless of role. Every transaction
// that locks both rows goes through this, which rules out lock-order
// deadlocks between callers racing on the same pair.
func orderedRefs(truckID, loadID string) (freightRef, freightRef) {
	truck := freightRef{table: "trucks", id: truckID}
	load := freightRef{table: "loads", id: loadID}
	if loadID < truckID {
		return load, truck
	}
	return truck, load
}

func lockFreightRow(ctx context.Context, tx pgx.Tx, ref freightRef) (domain.FreightStatus, bool, error) {
	var status domain.FreightStatus
	err := tx.QueryRow(ctx, `SELECT status FROM `+ref.table+` WHERE id=$1 FOR UPDATE`, ref.id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}

func setFreightStatus(ctx context.Context, tx pgx.Tx, ref freightRef, status domain.FreightStatus) error {
	_, err := tx.Exec(ctx, `UPDATE `+ref.table+` SET status=$1, updated_at=now() WHERE id=$2`, status, ref.id)
	return err
}

func (r *PGBookingRepository) CreateReservation(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	first, second := orderedRefs(booking.TruckID, booking.LoadID)
	firstStatus, firstOK, err := lockFreightRow(ctx, tx, first)
	if err != nil {
		return err
	}
	secondStatus, secondOK, err := lockFreightRow(ctx, tx, second)
	if err != nil {
		return err
	}

	// Re-check after the locks are held: both rows exist and are still OPEN.
	// The unlocked idempotency lookup happened before the transaction, so
	// status may have moved in between.
	if !firstOK || !secondOK {
		return ErrResourceNotFound
	}
	if !firstStatus.CanTransition(domain.FreightStatusReserved) || !secondStatus.CanTransition(domain.FreightStatusReserved) {
		return ErrResourceUnavailable
	}

	if err := setFreightStatus(ctx, tx, first, domain.FreightStatusReserved); err != nil {
		return err
	}
	if err := setFreightStatus(ctx, tx, second, domain.FreightStatusReserved); err != nil {
		return err
	}

	booking.Status = domain.BookingStatusInitiated
	booking.PaymentStatus = domain.PaymentStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, truck_id, load_id, price, status, payment_status, booking_reference_id, payment_link, payment_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		booking.ID, booking.TruckID, booking.LoadID, booking.Price, booking.Status, booking.PaymentStatus, booking.ReferenceID, booking.PaymentLink, booking.PaymentExpiresAt).
		Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateReference
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) ConfirmPaid(ctx context.Context, reference string) (*domain.Booking, bool, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	b, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference_id=$1 FOR UPDATE`, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}

	// Idempotency guard: replayed webhooks for an already-processed booking
	// must be a no-op, not an error.
	if b.PaymentStatus != domain.PaymentStatusPending {
		return b, false, nil
	}

	first, second := orderedRefs(b.TruckID, b.LoadID)
	_, firstOK, err := lockFreightRow(ctx, tx, first)
	if err != nil {
		return nil, false, err
	}
	_, secondOK, err := lockFreightRow(ctx, tx, second)
	if err != nil {
		return nil, false, err
	}
	if !firstOK || !secondOK {
		return b, false, nil
	}

	if err := setFreightStatus(ctx, tx, first, domain.FreightStatusBooked); err != nil {
		return nil, false, err
	}
	if err := setFreightStatus(ctx, tx, second, domain.FreightStatusBooked); err != nil {
		return nil, false, err
	}

	updated, err := scanBooking(tx.QueryRow(ctx, `UPDATE bookings SET status=$1, payment_status=$2, updated_at=now() WHERE id=$3 RETURNING `+bookingColumns,
		domain.BookingStatusPaid, domain.PaymentStatusPaid, b.ID))
	if err != nil {
		return nil, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

func (r *PGBookingRepository) ListOverdueReferences(ctx context.Context, now time.Time) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_reference_id FROM bookings WHERE payment_status=$1 AND payment_expires_at < $2`,
		domain.PaymentStatusPending, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *PGBookingRepository) ExpireOne(ctx context.Context, reference string, now time.Time) (*domain.Booking, bool, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	// SKIP LOCKED: if a payment confirmation holds this row right now, leave
	// it for the next cycle instead of waiting behind live traffic. The
	// PENDING/deadline predicates re-check eligibility under the lock.
	b, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE booking_reference_id=$1 AND payment_status=$2 AND payment_expires_at < $3
		FOR UPDATE SKIP LOCKED`, reference, domain.PaymentStatusPending, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	updated, err := scanBooking(tx.QueryRow(ctx, `UPDATE bookings SET status=$1, payment_status=$2, updated_at=now() WHERE id=$3 RETURNING `+bookingColumns,
		domain.BookingStatusExpired, domain.PaymentStatusFailed, b.ID))
	if err != nil {
		return nil, false, err
	}

	// Resources revert only if still RESERVED; anything else means they moved
	// on since and are not this booking's to release.
	first, second := orderedRefs(b.TruckID, b.LoadID)
	for _, ref := range []freightRef{first, second} {
		status, ok, err := lockFreightRow(ctx, tx, ref)
		if err != nil {
			return nil, false, err
		}
		if ok && status == domain.FreightStatusReserved {
			if err := setFreightStatus(ctx, tx, ref, domain.FreightStatusOpen); err != nil {
				return nil, false, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference_id=$1`, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *PGBookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
