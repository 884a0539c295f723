package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SelectionPhase tracks the lifecycle of one booking attempt. A session moves
// from Selecting to Confirmed exactly once; a new attempt gets a new Selection.
type SelectionPhase string

const (
	PhaseSelecting SelectionPhase = "SELECTING"
	PhaseConfirmed SelectionPhase = "CONFIRMED"
)

// Schedule is the externally supplied availability for one service: the
// pre-existing booked seats and performance time for seat-based services, and
// the offered time slots for slot-based ones.
type Schedule struct {
	Date        time.Time
	Time        string
	BookedSeats SeatSet
	Slots       []string
}

func (s Schedule) OffersSlot(slot string) bool {
	for _, v := range s.Slots {
		if v == slot {
			return true
		}
	}

	return false
}

type AvailabilityRepository interface {
	GetSchedule(ctx context.Context, serviceID int) (*Schedule, error)
}

// Selection is the per-session state of an in-progress booking. Exactly one of
// Seats and Slot is ever populated, determined by the service kind.
type Selection struct {
	ID       string
	Phase    SelectionPhase
	Service  Service
	Schedule Schedule
	Seats    SeatSet
	Slot     string
}

func NewSelection(service Service, schedule Schedule) *Selection {
	return &Selection{
		ID:       uuid.New().String(),
		Phase:    PhaseSelecting,
		Service:  service,
		Schedule: schedule,
		Seats:    NewSeatSet(),
	}
}

// ToggleSeat adds the seat to the selection, or removes it when already
// selected. Seats in the booked set are left untouched: the boundary rejects
// those clicks before they get here, and the engine never adds one regardless.
func (s *Selection) ToggleSeat(seat SeatID) error {
	if s.Phase != PhaseSelecting {
		return ErrSessionNotActive
	}

	if s.Service.Kind != SeatBased {
		return ErrKindMismatch
	}

	if !seat.Valid() {
		return ErrInvalidSeat
	}

	if s.Schedule.BookedSeats.Contains(seat) {
		return nil
	}

	if s.Seats.Contains(seat) {
		s.Seats.Remove(seat)
	} else {
		s.Seats.Add(seat)
	}

	return nil
}

// ChooseSlot replaces the selected slot unconditionally; only one slot is held
// at a time.
func (s *Selection) ChooseSlot(slot string) error {
	if s.Phase != PhaseSelecting {
		return ErrSessionNotActive
	}

	if s.Service.Kind != SlotBased {
		return ErrKindMismatch
	}

	if !s.Schedule.OffersSlot(slot) {
		return ErrUnknownSlot
	}

	s.Slot = slot

	return nil
}

// Total derives the price of the current selection: seat count times unit
// price for seat-based services, the unit price once a slot is chosen for
// slot-based ones, and zero otherwise. It is recomputed on every call and
// never cached.
func (s *Selection) Total() decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}

	switch s.Service.Kind {
	case SeatBased:
		return s.Service.Price.Mul(decimal.NewFromInt(int64(len(s.Seats))))
	case SlotBased:
		if s.Slot == "" {
			return decimal.Zero
		}
		return s.Service.Price
	}

	return decimal.Zero
}

// Confirm snapshots the selection into an immutable BookingRecord and moves
// the session to its terminal phase. A zero total is rejected with
// ErrNothingSelected: a booking with nothing selected can never be confirmed.
func (s *Selection) Confirm(ref string, now time.Time) (*BookingRecord, error) {
	if s.Phase != PhaseSelecting {
		return nil, ErrSessionNotActive
	}

	total := s.Total()
	if !total.IsPositive() {
		return nil, ErrNothingSelected
	}

	record := BookingRecord{
		Ref:         ref,
		ServiceID:   s.Service.ID,
		ServiceName: s.Service.Name,
		Date:        s.Schedule.Date,
		Time:        s.Schedule.Time,
		Status:      BookingUpcoming,
		TotalPrice:  total,
		CreatedAt:   now,
	}

	if s.Service.Kind == SeatBased {
		record.Seats = s.Seats.Labels()
	} else {
		record.Time = s.Slot
	}

	s.Phase = PhaseConfirmed

	return &record, nil
}
