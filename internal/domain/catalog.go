package domain

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// FulfillmentKind discriminates how a service is delivered: either the
// customer picks discrete seats from a fixed grid, or a single time slot.
type FulfillmentKind string

const (
	SeatBased FulfillmentKind = "SEAT_BASED"
	SlotBased FulfillmentKind = "SLOT_BASED"
)

func (k FulfillmentKind) Valid() bool {
	switch k {
	case SeatBased, SlotBased:
		return true
	}

	return false
}

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "All"

type Service struct {
	ID           int
	Name         string
	Kind         FulfillmentKind
	Description  string
	Duration     int // minutes, only meaningful for slot-based services
	Price        decimal.Decimal
	Location     string
	Category     string
	ImageUrl     string
	AvgRating    float64
	TotalRatings int
}

// FilterServices returns the subset of services matching both the search term
// and the category. The term is matched case-insensitively as a substring of
// the name or the description; an empty term matches everything. CategoryAll
// disables the category predicate. The result preserves the input order.
func FilterServices(services []Service, term, category string) []Service {
	term = strings.ToLower(term)
	filtered := make([]Service, 0, len(services))

	for _, s := range services {
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Description), term) {
			continue
		}

		if category != CategoryAll && s.Category != category {
			continue
		}

		filtered = append(filtered, s)
	}

	return filtered
}

type ServiceRepository interface {
	GetAll(ctx context.Context) ([]Service, error)
	GetById(ctx context.Context, id int) (*Service, error)
	Categories(ctx context.Context) ([]string, error)
}
