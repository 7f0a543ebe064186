package http

import (
	"encoding/json"
	"net/http"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	user, err := h.users.GetUser(r.Context(), requester, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Password != "" && len(req.Password) < 6 {
		badRequest(w, "password must be at least 6 characters long")
		return
	}

	user, err := h.users.UpdateUser(r.Context(), requester, id, req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	if err := h.users.DeleteUser(r.Context(), requester, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type favoritesRequest struct {
	FavoriteCarIDs []int32 `json:"favorite_car_ids"`
}

func (h *UserHandler) SetFavorites(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	var req favoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	for _, carID := range req.FavoriteCarIDs {
		if carID <= 0 {
			badRequest(w, "favorite_car_ids must be a list of valid car ids")
			return
		}
	}

	user, err := h.users.SetFavoriteCars(r.Context(), requester, id, req.FavoriteCarIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrNoToken)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid user id format")
		return
	}

	if err := h.users.ClearFavoriteCars(r.Context(), requester, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
