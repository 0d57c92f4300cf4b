package handlers

import (
	"net/http"
	"strconv"

	"foursquared/projector"
	services "foursquared/service"

	"github.com/gorilla/mux"
)

const OFFSET_ARG = "offset"

// VenueResponse pairs the typed fetch outcome with the projected venue view.
type VenueResponse struct {
	Result services.FetchResult `json:"result"`
	View   projector.VenueView  `json:"view"`
}

type VenueHandler struct {
	searchService *services.SearchService
}

func NewVenueHandler(searchService *services.SearchService) *VenueHandler {
	return &VenueHandler{searchService: searchService}
}

// GetVenue handles GET /v1/venues/{id}. An unknown venue answers 404 with
// the empty sentinel view so clients can redirect away.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[ID_PATH_ARG]
	view := h.searchService.Venue(venueID)

	status := http.StatusOK
	if view.Venue.ID == "" {
		status = http.StatusNotFound
	}
	writeJSON(w, status, view)
}

// FetchPhotos handles POST /v1/venues/{id}/photos: fetch the venue's photos
// from the API, merge them and answer with the refreshed view.
func (h *VenueHandler) FetchPhotos(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[ID_PATH_ARG]
	result := h.searchService.FetchVenuePhotos(venueID)

	writeJSON(w, statusCodeFor(result), VenueResponse{
		Result: result,
		View:   h.searchService.Venue(venueID),
	})
}

// FetchTips handles POST /v1/venues/{id}/tips?offset=: fetch one page of
// tips at the requested offset, merge it and answer with the refreshed view.
func (h *VenueHandler) FetchTips(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[ID_PATH_ARG]

	offset := 0
	if raw := r.URL.Query().Get(OFFSET_ARG); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid argument "+OFFSET_ARG, http.StatusBadRequest)
			return
		}
		offset = parsed
	}

	result := h.searchService.FetchVenueTips(venueID, offset)

	writeJSON(w, statusCodeFor(result), VenueResponse{
		Result: result,
		View:   h.searchService.Venue(venueID),
	})
}
