// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Service struct {
	Id           int             `json:"id"`
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Description  string          `json:"description"`
	Duration     *int            `json:"duration,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
	Category     string          `json:"category"`
	ImageUrl     string          `json:"imageUrl"`
	AvgRating    float64         `json:"avgRating"`
	TotalRatings int             `json:"totalRatings"`
}

type ServiceListResponse struct {
	Services   []Service `json:"services"`
	Categories []string  `json:"categories,omitempty"`
}

type ServiceResponse struct {
	Service Service `json:"service"`
}

type Seat struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SlotOption struct {
	Time     string `json:"time"`
	Selected bool   `json:"selected"`
}

type BookingSession struct {
	SessionId     string          `json:"sessionId"`
	ServiceId     int             `json:"serviceId"`
	ServiceName   string          `json:"serviceName"`
	Kind          string          `json:"kind"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Date          string          `json:"date"`
	SeatRows      []SeatRow       `json:"seatRows,omitempty"`
	SelectedSeats []string        `json:"selectedSeats,omitempty"`
	Slots         []SlotOption    `json:"slots,omitempty"`
	SelectedSlot  string          `json:"selectedSlot,omitempty"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

type BookingSessionResponse struct {
	BookingSession BookingSession `json:"bookingSession"`
}

type ToggleSeatRequest struct {
	Seat string `json:"seat" validate:"required,seat_label"`
}

type ChooseSlotRequest struct {
	Slot string `json:"slot" validate:"required,time_slot"`
}

type Booking struct {
	Ref         string          `json:"ref"`
	ServiceId   int             `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Seats       []string        `json:"seats,omitempty"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type BookingHistoryResponse struct {
	Upcoming []Booking `json:"upcoming"`
	Past     []Booking `json:"past"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

type CreateReviewRequest struct {
	ServiceId int    `json:"serviceId" validate:"required,min=1"`
	UserName  string `json:"userName" validate:"required,max=50"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required,max=500"`
}

type Review struct {
	Id          int       `json:"id"`
	ServiceId   int       `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	UserName    string    `json:"userName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Date        time.Time `json:"date"`
}

type ReviewResponse struct {
	Review Review `json:"review"`
}

type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
}

type RevenuePoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type OccupancyPoint struct {
	Service   string `json:"service"`
	Occupancy int    `json:"occupancy"`
}

type AnalyticsResponse struct {
	TotalBookings  int              `json:"totalBookings"`
	OccupancyRate  int              `json:"occupancyRate"`
	TotalRevenue   decimal.Decimal  `json:"totalRevenue"`
	MonthlyRevenue []RevenuePoint   `json:"monthlyRevenue"`
	SeatOccupancy  []OccupancyPoint `json:"seatOccupancy"`
}
