package app

import (
	"net/http"

	"github.com/neonbook/booking-system/api"
	"github.com/neonbook/booking-system/internal/domain"
)

func (app *application) GetAnalyticsReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := app.analyticsRepo.GetReport(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toApiAnalytics(report)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ListServicesAdminHandler(w http.ResponseWriter, r *http.Request) {
	services, err := app.serviceRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ServiceListResponse{
		Services: toApiServices(services),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ListBookingsAdminHandler(w http.ResponseWriter, r *http.Request) {
	records, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toApiBookings(records),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiAnalytics(report *domain.AnalyticsReport) api.AnalyticsResponse {
	resp := api.AnalyticsResponse{
		TotalBookings: report.TotalBookings,
		OccupancyRate: report.OccupancyRate,
		TotalRevenue:  report.TotalRevenue,
	}

	for _, p := range report.MonthlyRevenue {
		resp.MonthlyRevenue = append(resp.MonthlyRevenue, api.RevenuePoint{
			Month:   p.Month,
			Revenue: p.Revenue,
		})
	}

	for _, p := range report.SeatOccupancy {
		resp.SeatOccupancy = append(resp.SeatOccupancy, api.OccupancyPoint{
			Service:   p.Service,
			Occupancy: p.Occupancy,
		})
	}

	return resp
}
