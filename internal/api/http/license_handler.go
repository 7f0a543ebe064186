package http

import (
	"encoding/json"
	"net/http"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type LicenseHandler struct {
	licenses service.LicenseService
}

func NewLicenseHandler(licenses service.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenses: licenses}
}

type licenseRequest struct {
	Number     string    `json:"number"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date"`
}

func (req *licenseRequest) validate() string {
	if req.Number == "" {
		return "number is required"
	}
	if req.IssueDate.IsZero() || req.ExpiryDate.IsZero() {
		return "issue_date and expiry_date are required"
	}
	if !req.ExpiryDate.After(req.IssueDate) {
		return "expiry_date must be after issue_date"
	}
	return ""
}

func (h *LicenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	userID, ok := pathID(r, "userId")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	var req licenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(w, msg)
		return
	}

	lic := &domain.DriverLicense{
		UserID:     userID,
		Number:     req.Number,
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
	}
	if err := h.licenses.CreateLicense(r.Context(), requester, lic); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lic)
}

func (h *LicenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	userID, ok := pathID(r, "userId")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	lic, err := h.licenses.GetLicense(r.Context(), requester, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lic)
}

func (h *LicenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	userID, ok := pathID(r, "userId")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	var req licenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(w, msg)
		return
	}

	lic := &domain.DriverLicense{
		UserID:     userID,
		Number:     req.Number,
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
	}
	updated, err := h.licenses.UpdateLicense(r.Context(), requester, lic)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *LicenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	userID, ok := pathID(r, "userId")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	if err := h.licenses.DeleteLicense(r.Context(), requester, userID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
