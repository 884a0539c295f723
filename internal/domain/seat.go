package domain

import (
	"fmt"
	"sort"
)

// The reference seating grid: rows A to F, columns 1 to 10.
const (
	SeatRows    = 6
	SeatColumns = 10
)

// SeatID is a row letter followed by a 1-based column number, e.g. "C4".
type SeatID string

// SeatStatus is derived, never stored: a seat is booked if it belongs to the
// externally supplied booked set, selected if it belongs to the current
// selection, and available otherwise.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatBooked    SeatStatus = "BOOKED"
	SeatSelected  SeatStatus = "SELECTED"
)

// RowCol resolves the seat label into a 1-based row and column position.
// It reports false for labels outside the grid.
func (s SeatID) RowCol() (int, int, bool) {
	if len(s) < 2 || len(s) > 3 {
		return 0, 0, false
	}

	row := int(s[0]-'A') + 1
	if row < 1 || row > SeatRows {
		return 0, 0, false
	}

	col := 0
	for _, ch := range s[1:] {
		if ch < '0' || ch > '9' {
			return 0, 0, false
		}
		col = col*10 + int(ch-'0')
	}

	if col < 1 || col > SeatColumns {
		return 0, 0, false
	}

	return row, col, true
}

func (s SeatID) Valid() bool {
	_, _, ok := s.RowCol()
	return ok
}

// AllSeats enumerates the full seat universe in row-major order, A1 to F10.
func AllSeats() []SeatID {
	seats := make([]SeatID, 0, SeatRows*SeatColumns)

	for row := 0; row < SeatRows; row++ {
		for col := 1; col <= SeatColumns; col++ {
			seats = append(seats, SeatID(fmt.Sprintf("%c%d", rune('A'+row), col)))
		}
	}

	return seats
}

func SeatStatusOf(seat SeatID, booked, selected SeatSet) SeatStatus {
	switch {
	case booked.Contains(seat):
		return SeatBooked
	case selected.Contains(seat):
		return SeatSelected
	}

	return SeatAvailable
}

type SeatSet map[SeatID]struct{}

func NewSeatSet(seats ...SeatID) SeatSet {
	set := make(SeatSet, len(seats))
	for _, seat := range seats {
		set[seat] = struct{}{}
	}

	return set
}

func (s SeatSet) Contains(seat SeatID) bool {
	_, ok := s[seat]
	return ok
}

func (s SeatSet) Add(seat SeatID) {
	s[seat] = struct{}{}
}

func (s SeatSet) Remove(seat SeatID) {
	delete(s, seat)
}

// Labels returns the seats in grid order. Column ordering is numeric, so A2
// comes before A10.
func (s SeatSet) Labels() []SeatID {
	labels := make([]SeatID, 0, len(s))
	for seat := range s {
		labels = append(labels, seat)
	}

	sort.Slice(labels, func(i, j int) bool {
		ri, ci, _ := labels[i].RowCol()
		rj, cj, _ := labels[j].RowCol()

		if ri != rj {
			return ri < rj
		}

		return ci < cj
	})

	return labels
}
