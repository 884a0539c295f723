package app

import (
	"errors"
	"net/http"

	"github.com/neonbook/booking-system/api"
	"github.com/neonbook/booking-system/internal/domain"
)

func (app *application) GetServices(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}

	services, err := app.serviceRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	categories, err := app.serviceRepo.Categories(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	filtered := domain.FilterServices(services, term, category)

	resp := api.ServiceListResponse{
		Services:   toApiServices(filtered),
		Categories: categories,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetServiceById(w http.ResponseWriter, r *http.Request) {
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

	resp := api.ServiceResponse{
		Service: toApiService(*service),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiServices(services []domain.Service) []api.Service {
	apiServices := make([]api.Service, len(services))

	for i, s := range services {
		apiServices[i] = toApiService(s)
	}

	return apiServices
}

func toApiService(service domain.Service) api.Service {
	apiService := api.Service{
		Id:           service.ID,
		Name:         service.Name,
		Kind:         string(service.Kind),
		Description:  service.Description,
		Price:        service.Price,
		Location:     service.Location,
		Category:     service.Category,
		ImageUrl:     service.ImageUrl,
		AvgRating:    service.AvgRating,
		TotalRatings: service.TotalRatings,
	}

	if service.Duration > 0 {
		duration := service.Duration
		apiService.Duration = &duration
	}

	return apiService
}
