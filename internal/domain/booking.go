package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "UPCOMING"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingUpcoming, BookingCompleted, BookingCancelled:
		return true
	}

	return false
}

// BookingRecord is a confirmed booking. It is append-only history: TotalPrice
// is the total captured at confirmation time and is never recomputed.
type BookingRecord struct {
	Ref         string
	ServiceID   int
	ServiceName string
	Date        time.Time
	Time        string
	Seats       []SeatID // nil for slot-based bookings
	Status      BookingStatus
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}

// BookingHistory partitions records into upcoming and past bookings for the
// dashboard. Both groups preserve the original relative order.
type BookingHistory struct {
	Upcoming []BookingRecord
	Past     []BookingRecord
}

// PartitionBookings splits records by status: Upcoming on one side, Completed
// and Cancelled on the other. A status outside the known set is a contract
// violation by the record's producer and is reported, not dropped.
func PartitionBookings(records []BookingRecord) (BookingHistory, error) {
	var history BookingHistory

	for _, r := range records {
		switch r.Status {
		case BookingUpcoming:
			history.Upcoming = append(history.Upcoming, r)
		case BookingCompleted, BookingCancelled:
			history.Past = append(history.Past, r)
		default:
			return BookingHistory{}, fmt.Errorf("%w: %q on booking %s", ErrUnknownBookingStatus, r.Status, r.Ref)
		}
	}

	return history, nil
}

type BookingRepository interface {
	GetAll(ctx context.Context) ([]BookingRecord, error)
	GetByRef(ctx context.Context, ref string) (*BookingRecord, error)
	Create(ctx context.Context, record BookingRecord) error
}
