package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

type createRentalRequest struct {
	CarID             int32     `json:"car_id"`
	UserID            int32     `json:"user_id"`
	RentalStartDate   time.Time `json:"rental_start_date"`
	RentalFinishDate  time.Time `json:"rental_finish_date"`
	OneDayRentalPrice int32     `json:"one_day_rental_price"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}

	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.CarID <= 0 {
		badRequest(w, "car_id is required")
		return
	}
	if req.RentalStartDate.IsZero() || req.RentalFinishDate.IsZero() {
		badRequest(w, "rental_start_date and rental_finish_date are required")
		return
	}
	if req.OneDayRentalPrice < 0 {
		badRequest(w, "one_day_rental_price must be a non-negative integer")
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), requester, req.CarID, req.UserID, req.RentalStartDate, req.RentalFinishDate, req.OneDayRentalPrice)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

type checkCarRequest struct {
	CarID            int32     `json:"car_id"`
	RentalStartDate  time.Time `json:"rental_start_date"`
	RentalFinishDate time.Time `json:"rental_finish_date"`
}

// Check probes a car's availability for a date range without booking.
func (h *RentalHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.CarID <= 0 {
		badRequest(w, "car_id is required")
		return
	}

	if err := h.rentals.CheckCarForDates(r.Context(), req.CarID, req.RentalStartDate, req.RentalFinishDate); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": true})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid rental id format")
		return
	}

	rental, err := h.rentals.GetRental(r.Context(), requester, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}

	rentals, err := h.rentals.ListMyRentals(r.Context(), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}

	rentals, err := h.rentals.ListAllRentals(r.Context(), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}

	stats, err := h.rentals.Statistics(r.Context(), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type updateRentalRequest struct {
	RentalStartDate  time.Time           `json:"rental_start_date"`
	RentalFinishDate time.Time           `json:"rental_finish_date"`
	Status           domain.RentalStatus `json:"status"`
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid rental id format")
		return
	}

	var req updateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		badRequest(w, "status must be Done or Canceled")
		return
	}
	if req.RentalStartDate.IsZero() || req.RentalFinishDate.IsZero() {
		badRequest(w, "rental_start_date and rental_finish_date are required")
		return
	}

	rental, err := h.rentals.UpdateRental(r.Context(), requester, id, service.UpdateRentalInput{
		RentalStartDate:  req.RentalStartDate,
		RentalFinishDate: req.RentalFinishDate,
		Status:           req.Status,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid rental id format")
		return
	}

	rental, err := h.rentals.CancelRental(r.Context(), requester, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid rental id format")
		return
	}

	if err := h.rentals.DeleteRental(r.Context(), requester, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
