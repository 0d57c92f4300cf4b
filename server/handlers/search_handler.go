package handlers

import (
	"encoding/json"
	"net/http"

	"foursquared/plot"
	"foursquared/projector"
	services "foursquared/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const (
	QUERY_ARG   = "query"
	NEAR_ARG    = "near"
	ID_PATH_ARG = "id"
)

// SearchResponse pairs the typed fetch outcome with the projected view.
type SearchResponse struct {
	Result services.FetchResult  `json:"result"`
	View   projector.ResultsView `json:"view"`
}

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /v1/search?query=&near=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(QUERY_ARG)
	near := r.URL.Query().Get(NEAR_ARG)
	if query == "" || near == "" {
		http.Error(w, "Missing argument "+QUERY_ARG+" or "+NEAR_ARG, http.StatusBadRequest)
		return
	}

	result := h.searchService.Search(query, near)
	status := statusCodeFor(result)

	writeJSON(w, status, SearchResponse{
		Result: result,
		View:   h.searchService.Results(result.SearchID),
	})
}

// GetSearch handles GET /v1/searches/{id}. Unknown ids still answer with a
// well-formed empty view, the sidebar stays usable.
func (h *SearchHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	searchID := mux.Vars(r)[ID_PATH_ARG]
	writeJSON(w, http.StatusOK, h.searchService.Results(searchID))
}

// Chart handles GET /v1/searches/{id}/chart and renders the ratings of a
// search's venues as an HTML bar chart. Unknown ids answer 404, same as the
// venue route.
func (h *SearchHandler) Chart(w http.ResponseWriter, r *http.Request) {
	searchID := mux.Vars(r)[ID_PATH_ARG]
	view := h.searchService.Results(searchID)
	if view.CurrentFetch.Query == "" {
		http.Error(w, "Search not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := plot.PlotSearchRatings(view, w); err != nil {
		log.Error().Err(err).Str("search_id", searchID).Msg("failed to render ratings chart")
	}
}

// ClearState handles DELETE /v1/state
func (h *SearchHandler) ClearState(w http.ResponseWriter, r *http.Request) {
	result := h.searchService.ClearAll()
	writeJSON(w, statusCodeFor(result), result)
}

// Ping handles GET /ping
func (h *SearchHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func statusCodeFor(result services.FetchResult) int {
	if result.Status == services.StatusError {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("error encoding response")
	}
}
