package app

import (
	"net/http"

	"github.com/neonbook/booking-system/api"
	"github.com/neonbook/booking-system/internal/domain"
)

func (app *application) GetBookingHistoryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// An unknown status means a producer broke the BookingRecord contract;
	// surfacing it loudly beats quietly dropping the record.
	history, err := domain.PartitionBookings(records)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingHistoryResponse{
		Upcoming: toApiBookings(history.Upcoming),
		Past:     toApiBookings(history.Past),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBookings(records []domain.BookingRecord) []api.Booking {
	bookings := make([]api.Booking, len(records))

	for i, record := range records {
		bookings[i] = toApiBooking(record)
	}

	return bookings
}
