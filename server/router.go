package server

import (
	"foursquared/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	searchHandler *handlers.SearchHandler
	venueHandler  *handlers.VenueHandler
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	searchHandler *handlers.SearchHandler,
	venueHandler *handlers.VenueHandler,
	router *mux.Router) *Router {
	return &Router{
		searchHandler: searchHandler,
		venueHandler:  venueHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?query={keyword}&near={location}
	r.router.HandleFunc("/v1/search", r.searchHandler.Search).Methods("GET")

	r.router.HandleFunc("/v1/searches/{id}", r.searchHandler.GetSearch).Methods("GET")
	r.router.HandleFunc("/v1/searches/{id}/chart", r.searchHandler.Chart).Methods("GET")

	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}/photos", r.venueHandler.FetchPhotos).Methods("POST")
	r.router.HandleFunc("/v1/venues/{id}/tips", r.venueHandler.FetchTips).Methods("POST")

	r.router.HandleFunc("/v1/state", r.searchHandler.ClearState).Methods("DELETE")

	r.router.HandleFunc("/ping", r.searchHandler.Ping).Methods("GET")
}
