package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/service"
)

// NewRouter wires all handlers. Auth routes and the active-car listing
// are public; everything else requires a valid access token.
func NewRouter(
	authSvc service.AuthService,
	userSvc service.UserService,
	carSvc service.CarService,
	rentalSvc service.RentalService,
	licenseSvc service.LicenseService,
	authMw *AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog)

	authHandler := NewAuthHandler(authSvc)
	userHandler := NewUserHandler(userSvc)
	carHandler := NewCarHandler(carSvc)
	rentalHandler := NewRentalHandler(rentalSvc)
	licenseHandler := NewLicenseHandler(licenseSvc)

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}", carHandler.Get).Methods(http.MethodGet)

	// Authenticated routes
	s := r.NewRoute().Subrouter()
	s.Use(authMw.Require)

	s.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	s.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPut)
	s.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods(http.MethodDelete)
	s.HandleFunc("/users/{id:[0-9]+}/favorites", userHandler.SetFavorites).Methods(http.MethodPut)
	s.HandleFunc("/users/{id:[0-9]+}/favorites", userHandler.ClearFavorites).Methods(http.MethodDelete)

	s.HandleFunc("/cars", carHandler.Create).Methods(http.MethodPost)
	s.HandleFunc("/cars/{id:[0-9]+}", carHandler.Update).Methods(http.MethodPut)
	s.HandleFunc("/cars/{id:[0-9]+}", carHandler.Delete).Methods(http.MethodDelete)

	s.HandleFunc("/licenses/{userId:[0-9]+}", licenseHandler.Create).Methods(http.MethodPost)
	s.HandleFunc("/licenses/{userId:[0-9]+}", licenseHandler.Get).Methods(http.MethodGet)
	s.HandleFunc("/licenses/{userId:[0-9]+}", licenseHandler.Update).Methods(http.MethodPut)
	s.HandleFunc("/licenses/{userId:[0-9]+}", licenseHandler.Delete).Methods(http.MethodDelete)

	s.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	s.HandleFunc("/rentals", rentalHandler.ListMine).Methods(http.MethodGet)
	s.HandleFunc("/rentals/all", rentalHandler.ListAll).Methods(http.MethodGet)
	s.HandleFunc("/rentals/statistics", rentalHandler.Statistics).Methods(http.MethodGet)
	s.HandleFunc("/rentals/check", rentalHandler.Check).Methods(http.MethodPost)
	s.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	s.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods(http.MethodPut)
	s.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)
	s.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods(http.MethodDelete)

	return r
}
