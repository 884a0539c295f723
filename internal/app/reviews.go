package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/neonbook/booking-system/api"
	"github.com/neonbook/booking-system/internal/domain"
)

func (app *application) ListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.reviewRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReviewListResponse{
		Reviews: toApiReviews(reviews),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReviewRequest

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

	service, err := app.serviceRepo.GetById(r.Context(), input.ServiceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("service %d does not exist", input.ServiceId))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	review := domain.Review{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		UserName:    input.UserName,
		Rating:      input.Rating,
		Comment:     input.Comment,
		Date:        time.Now(),
	}

	err = app.reviewRepo.Create(r.Context(), &review)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReviewResponse{
		Review: toApiReview(review),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiReviews(reviews []domain.Review) []api.Review {
	apiReviews := make([]api.Review, len(reviews))

	for i, review := range reviews {
		apiReviews[i] = toApiReview(review)
	}

	return apiReviews
}

func toApiReview(review domain.Review) api.Review {
	return api.Review{
		Id:          review.ID,
		ServiceId:   review.ServiceID,
		ServiceName: review.ServiceName,
		UserName:    review.UserName,
		Rating:      review.Rating,
		Comment:     review.Comment,
		Date:        review.Date,
	}
}
