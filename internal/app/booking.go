package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/neonbook/booking-system/api"
	"github.com/neonbook/booking-system/internal/domain"
)

func (app *application) CreateBookingSessionHandler(w http.ResponseWriter, r *http.Request) {
	serviceId, err := app.readIntParam(r, "serviceId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	service, err := app.serviceRepo.GetById(r.Context(), serviceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if !service.Kind.Valid() {
		app.serverErrorResponse(w, r, fmt.Errorf("service %d has unsupported fulfillment kind %q", service.ID, service.Kind))
		return
	}

	schedule, err := app.availabilityRepo.GetSchedule(r.Context(), serviceId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Beginning a session always succeeds and replaces any selection the
	// session still had in progress.
	selection := domain.NewSelection(*service, *schedule)
	app.selections.Put(app.sessionToken(r), selection)

	resp := api.BookingSessionResponse{
		BookingSession: toApiBookingSession(selection),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingSessionHandler(w http.ResponseWriter, r *http.Request) {
	selection := app.selections.Get(app.sessionToken(r))
	if selection == nil {
		app.notFoundResponse(w, r)
		return
	}

	resp := api.BookingSessionResponse{
		BookingSession: toApiBookingSession(selection),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteBookingSessionHandler(w http.ResponseWriter, r *http.Request) {
	token := app.sessionToken(r)

	if app.selections.Get(token) == nil {
		app.notFoundResponse(w, r)
		return
	}

	app.selections.Delete(token)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) ToggleSeatHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.logger

	selection := app.selections.Get(app.sessionToken(r))
	if selection == nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.ToggleSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seat := domain.SeatID(input.Seat)

	// Clicks on already-booked seats are rejected here at the boundary; the
	// engine treats them as a no-op either way.
	if selection.Schedule.BookedSeats.Contains(seat) {
		logger.Warn("seat toggle rejected: seat already booked", "seat", seat)
		app.editConflictResponse(w, r, domain.ErrSeatAlreadyBooked)
		return
	}

	err = selection.ToggleSeat(seat)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.BookingSessionResponse{
		BookingSession: toApiBookingSession(selection),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ChooseSlotHandler(w http.ResponseWriter, r *http.Request) {
	selection := app.selections.Get(app.sessionToken(r))
	if selection == nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.ChooseSlotRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	err = selection.ChooseSlot(input.Slot)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.BookingSessionResponse{
		BookingSession: toApiBookingSession(selection),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ConfirmBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.logger
	token := app.sessionToken(r)

	selection := app.selections.Get(token)
	if selection == nil {
		app.notFoundResponse(w, r)
		return
	}

	record, err := selection.Confirm(app.bookingRef(), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNothingSelected):
			logger.Warn("booking confirmation rejected: nothing selected", "service_id", selection.Service.ID)
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrSessionNotActive):
			app.editConflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.bookingRepo.Create(r.Context(), *record)
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("booking couldn't be stored: %w", err))
		return
	}

	// The selection served its purpose; the next booking starts fresh.
	app.selections.Delete(token)

	app.background(func() {
		err := app.mailer.Send(
			app.config.smtp.recipient,
			fmt.Sprintf("Booking confirmed: %s", record.ServiceName),
			confirmationBody(record),
		)
		if err != nil {
			app.logger.Error("failed to send confirmation email", "booking_ref", record.Ref, "error", err)
		}
	})

	resp := api.BookingResponse{
		Booking: toApiBooking(*record),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingReceiptHandler(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "bookingRef")

	record, err := app.bookingRepo.GetByRef(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.BookingResponse{
		Booking: toApiBooking(*record),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func confirmationBody(record *domain.BookingRecord) string {
	body := fmt.Sprintf(
		"Your booking for %s has been confirmed.\n\nBooking ID: %s\nDate: %s at %s\n",
		record.ServiceName,
		record.Ref,
		record.Date.Format("2006-01-02"),
		record.Time,
	)

	if len(record.Seats) > 0 {
		body += fmt.Sprintf("Seats: %s\n", joinSeats(record.Seats))
	}

	body += fmt.Sprintf("Total: $%s\n", record.TotalPrice)

	return body
}

func joinSeats(seats []domain.SeatID) string {
	out := ""
	for i, seat := range seats {
		if i > 0 {
			out += ", "
		}
		out += string(seat)
	}

	return out
}

func toApiBookingSession(selection *domain.Selection) api.BookingSession {
	session := api.BookingSession{
		SessionId:   selection.ID,
		ServiceId:   selection.Service.ID,
		ServiceName: selection.Service.Name,
		Kind:        string(selection.Service.Kind),
		UnitPrice:   selection.Service.Price,
		Date:        selection.Schedule.Date.Format("2006-01-02"),
		TotalPrice:  selection.Total(),
	}

	switch selection.Service.Kind {
	case domain.SeatBased:
		session.SeatRows = toApiSeatRows(selection)
		session.SelectedSeats = toSeatLabels(selection.Seats.Labels())
	case domain.SlotBased:
		session.Slots = toApiSlots(selection)
		session.SelectedSlot = selection.Slot
	}

	return session
}

func toApiSeatRows(selection *domain.Selection) []api.SeatRow {
	var seatRows []api.SeatRow
	currentRow := ""

	for _, seat := range domain.AllSeats() {
		row := string(seat[0])
		if row != currentRow {
			seatRows = append(seatRows, api.SeatRow{Row: row})
			currentRow = row
		}

		status := domain.SeatStatusOf(seat, selection.Schedule.BookedSeats, selection.Seats)

		last := &seatRows[len(seatRows)-1]
		last.Seats = append(last.Seats, api.Seat{
			Label:  string(seat),
			Status: string(status),
		})
	}

	return seatRows
}

func toApiSlots(selection *domain.Selection) []api.SlotOption {
	slots := make([]api.SlotOption, len(selection.Schedule.Slots))

	for i, slot := range selection.Schedule.Slots {
		slots[i] = api.SlotOption{
			Time:     slot,
			Selected: slot == selection.Slot,
		}
	}

	return slots
}

func toApiBooking(record domain.BookingRecord) api.Booking {
	return api.Booking{
		Ref:         record.Ref,
		ServiceId:   record.ServiceID,
		ServiceName: record.ServiceName,
		Date:        record.Date.Format("2006-01-02"),
		Time:        record.Time,
		Seats:       toSeatLabels(record.Seats),
		Status:      string(record.Status),
		TotalPrice:  record.TotalPrice,
	}
}

func toSeatLabels(seats []domain.SeatID) []string {
	if len(seats) == 0 {
		return nil
	}

	labels := make([]string, len(seats))
	for i, seat := range seats {
		labels[i] = string(seat)
	}

	return labels
}
