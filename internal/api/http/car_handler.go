package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type CarHandler struct {
	cars service.CarService
}

func NewCarHandler(cars service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

func queryBound(r *http.Request, name string) (*int32, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return nil, false
	}
	bound := int32(v)
	return &bound, true
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CarFilter{
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
	}

	var ok bool
	if filter.MinPrice, ok = queryBound(r, "min_price"); !ok {
		badRequest(w, "min_price must be a valid non-negative integer")
		return
	}
	if filter.MaxPrice, ok = queryBound(r, "max_price"); !ok {
		badRequest(w, "max_price must be a valid non-negative integer")
		return
	}
	if filter.MinYear, ok = queryBound(r, "min_year"); !ok {
		badRequest(w, "min_year must be a valid year")
		return
	}
	if filter.MaxYear, ok = queryBound(r, "max_year"); !ok {
		badRequest(w, "max_year must be a valid year")
		return
	}
	// Bounds compare like with like: price against price, year against year.
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MaxPrice < *filter.MinPrice {
		badRequest(w, "max_price cannot be less than min_price")
		return
	}
	if filter.MinYear != nil && filter.MaxYear != nil && *filter.MaxYear < *filter.MinYear {
		badRequest(w, "max_year cannot be less than min_year")
		return
	}

	cars, err := h.cars.ListCars(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid car id format")
		return
	}

	car, err := h.cars.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

type carRequest struct {
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	Year     int32  `json:"year"`
	Rate     int32  `json:"rate"`
	Image    string `json:"image"`
	IsActive *bool  `json:"is_active"`
}

func (req *carRequest) validate() string {
	if req.Brand == "" {
		return "brand is required"
	}
	if req.Name == "" {
		return "name is required"
	}
	if req.Year < 1900 {
		return "year must be 1900 or later"
	}
	if req.Rate < 0 {
		return "rate must be a non-negative integer"
	}
	return ""
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}

	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(w, msg)
		return
	}

	car := &domain.Car{
		Brand:    req.Brand,
		Name:     req.Name,
		Year:     req.Year,
		Rate:     req.Rate,
		Image:    req.Image,
		IsActive: true,
	}
	if req.IsActive != nil {
		car.IsActive = *req.IsActive
	}

	if err := h.cars.CreateCar(r.Context(), requester, car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid car id format")
		return
	}

	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(w, msg)
		return
	}

	car := &domain.Car{
		ID:       id,
		Brand:    req.Brand,
		Name:     req.Name,
		Year:     req.Year,
		Rate:     req.Rate,
		Image:    req.Image,
		IsActive: true,
	}
	if req.IsActive != nil {
		car.IsActive = *req.IsActive
	}

	updated, err := h.cars.UpdateCar(r.Context(), requester, car)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid car id format")
		return
	}

	if err := h.cars.DeleteCar(r.Context(), requester, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
