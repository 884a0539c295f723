package app

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neonbook/booking-system/api"
	"github.com/neonbook/booking-system/internal/domain"
	"github.com/neonbook/booking-system/internal/mocks"
	"github.com/shopspring/decimal"
)

func catalogFixture() []domain.Service {
	return []domain.Service{
		{
			ID:          1,
			Name:        "Velvet Room Cinema",
			Kind:        domain.SeatBased,
			Description: "An evening screening in a restored picture house",
			Price:       decimal.NewFromInt(75),
			Location:    "Downtown",
			Category:    "Entertainment",
		},
		{
			ID:          2,
			Name:        "Arcade Tournament",
			Kind:        domain.SeatBased,
			Description: "Competitive retro gaming night",
			Price:       decimal.NewFromInt(150),
			Location:    "Pier 9",
			Category:    "Gaming",
		},
		{
			ID:          3,
			Name:        "Harbor Day Spa",
			Kind:        domain.SlotBased,
			Description: "A full body massage by the waterfront",
			Duration:    60,
			Price:       decimal.NewFromInt(45),
			Location:    "Harborfront",
			Category:    "Wellness",
		},
		{
			ID:          4,
			Name:        "Chef's Counter",
			Kind:        domain.SlotBased,
			Description: "A tasting menu seat at the open kitchen",
			Duration:    90,
			Price:       decimal.NewFromInt(25),
			Location:    "Market District",
			Category:    "Dining",
		},
	}
}

func catalogCategories() []string {
	return []string{"All", "Entertainment", "Gaming", "Wellness", "Dining"}
}

func TestGetServices(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		getAllFunc     func(context.Context) ([]domain.Service, error)
		categoriesFunc func(context.Context) ([]string, error)
		wantStatus     int
		wantServiceIds []int
		wantCategories []string
	}{
		{
			name:           "returns the full catalog without filters",
			url:            "/services",
			wantStatus:     http.StatusOK,
			wantServiceIds: []int{1, 2, 3, 4},
			wantCategories: catalogCategories(),
		},
		{
			name:           "filters by search term across name and description",
			url:            "/services?term=massage",
			wantStatus:     http.StatusOK,
			wantServiceIds: []int{3},
			wantCategories: catalogCategories(),
		},
		{
			name:           "search term is case insensitive",
			url:            "/services?term=ARCADE",
			wantStatus:     http.StatusOK,
			wantServiceIds: []int{2},
			wantCategories: catalogCategories(),
		},
		{
			name:           "filters by category",
			url:            "/services?category=Gaming",
			wantStatus:     http.StatusOK,
			wantServiceIds: []int{2},
			wantCategories: catalogCategories(),
		},
		{
			name:           "combines term and category",
			url:            "/services?term=seat&category=Dining",
			wantStatus:     http.StatusOK,
			wantServiceIds: []int{4},
			wantCategories: catalogCategories(),
		},
		{
			name:           "returns no services when nothing matches",
			url:            "/services?term=opera",
			wantStatus:     http.StatusOK,
			wantServiceIds: []int{},
			wantCategories: catalogCategories(),
		},
		{
			name: "fails when the service repository errors",
			url:  "/services",
			getAllFunc: func(ctx context.Context) ([]domain.Service, error) {
				return nil, fmt.Errorf("catalog unavailable")
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "fails when the category lookup errors",
			url:  "/services",
			categoriesFunc: func(ctx context.Context) ([]string, error) {
				return nil, fmt.Errorf("catalog unavailable")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceRepo := &mocks.MockServiceRepo{
				GetAllFunc: func(ctx context.Context) ([]domain.Service, error) {
					return catalogFixture(), nil
				},
				CategoriesFunc: func(ctx context.Context) ([]string, error) {
					return catalogCategories(), nil
				},
			}
			if tt.getAllFunc != nil {
				serviceRepo.GetAllFunc = tt.getAllFunc
			}
			if tt.categoriesFunc != nil {
				serviceRepo.CategoriesFunc = tt.categoriesFunc
			}

			app := newTestApplication(func(a *application) {
				a.serviceRepo = serviceRepo
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			app.GetServices(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decodeResponse[api.ServiceListResponse](t, w)

			gotIds := make([]int, 0, len(resp.Services))
			for _, service := range resp.Services {
				gotIds = append(gotIds, service.Id)
			}

			if diff := cmp.Diff(tt.wantServiceIds, gotIds); diff != "" {
				t.Errorf("service IDs mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantCategories, resp.Categories); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetServiceById(t *testing.T) {
	spa := catalogFixture()[2]

	tests := []struct {
		name           string
		serviceId      string
		getByIdFunc    func(context.Context, int) (*domain.Service, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ServiceResponse
	}{
		{
			name:           "fails when the service ID is not a number",
			serviceId:      "spa",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid serviceId parameter",
		},
		{
			name:           "fails when the service ID is zero",
			serviceId:      "0",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid serviceId parameter",
		},
		{
			name:      "fails when the service does not exist",
			serviceId: "99",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Service, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "fails when the repository errors",
			serviceId: "3",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Service, error) {
				return nil, fmt.Errorf("catalog unavailable")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:      "returns the service with its duration",
			serviceId: "3",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Service, error) {
				return &spa, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ServiceResponse{
				Service: api.Service{
					Id:          3,
					Name:        "Harbor Day Spa",
					Kind:        string(domain.SlotBased),
					Description: "A full body massage by the waterfront",
					Duration:    ptr(60),
					Price:       decimal.NewFromInt(45),
					Location:    "Harborfront",
					Category:    "Wellness",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.serviceRepo = &mocks.MockServiceRepo{GetByIdFunc: tt.getByIdFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/services/"+tt.serviceId, nil)
			r = withURLParam(r, "serviceId", tt.serviceId)

			app.GetServiceById(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				resp := decodeResponse[api.ServiceResponse](t, w)

				if diff := cmp.Diff(tt.wantResponse, &resp); diff != "" {
					t.Errorf("response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
