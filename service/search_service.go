package services

import (
	"errors"
	"time"

	"foursquared/api/foursquare"
	"foursquared/config"
	redisdao "foursquared/dao/redis"
	"foursquared/normalizer"
	"foursquared/projector"
	"foursquared/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Status classifies the outcome of one fetch-and-merge cycle.
type Status string

const (
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// Message severity levels: success (0), notice (1), warning (2), error (3).
const (
	MessageSuccess = 0
	MessageNotice  = 1
	MessageWarning = 2
	MessageError   = 3
)

// Message is the user-facing translation of a fetch outcome.
type Message struct {
	Type  int    `json:"type"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

// FetchResult is the typed outcome of a search or venue detail fetch. A
// failed or empty fetch merges nothing, so the store is never left holding a
// partial patch.
type FetchResult struct {
	Status   Status  `json:"status"`
	SearchID string  `json:"searchId,omitempty"`
	VenueID  string  `json:"venueId,omitempty"`
	Message  Message `json:"message"`
}

// SearchService orchestrates the full cycle: call the API, normalize the
// response, merge the patch into the store, persist a snapshot and project
// views back out.
type SearchService struct {
	store         *store.Store
	stateDao      *redisdao.RedisStateDAO
	foursquareAPI foursquare.FoursquareAPI
}

// NewSearchService constructs a SearchService with its collaborators.
func NewSearchService(
	st *store.Store,
	stateDao *redisdao.RedisStateDAO,
	foursquareAPI foursquare.FoursquareAPI,
) *SearchService {
	return &SearchService{
		store:         st,
		stateDao:      stateDao,
		foursquareAPI: foursquareAPI,
	}
}

// Hydrate loads the persisted snapshot into the store. Called once at
// startup, before the HTTP server accepts traffic.
func (s *SearchService) Hydrate() error {
	snapshot, err := s.stateDao.LoadSnapshot()
	if err != nil {
		return err
	}
	s.store.Hydrate(snapshot)
	log.Info().
		Int("searches", len(snapshot.Searches)).
		Int("venues", len(snapshot.Entities.Venues)).
		Msg("hydrated state from snapshot")
	return nil
}

// Search runs an explore request and folds the result into the store. Zero
// results report StatusEmpty and leave the store untouched.
func (s *SearchService) Search(query, near string) FetchResult {
	log.Info().Str("query", query).Str("near", near).Msg("starting search")

	resp, err := s.foursquareAPI.Explore(query, near)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("explore request failed")
		return errorResult(err)
	}

	patch := normalizer.NormalizeExplore(resp, time.Now())
	if patch.Search.ID == "" {
		// The API is supposed to echo a request id; fall back to a local
		// one so the search stays addressable.
		patch.Search.ID = uuid.NewString()
	}

	if len(patch.Search.Results) == 0 {
		log.Info().Str("query", query).Str("near", near).Msg("search returned no results")
		return FetchResult{
			Status: StatusEmpty,
			Message: Message{
				Type:  MessageWarning,
				Title: config.MSG_API_RESPONSE_TITLE,
				Text:  config.MSG_NO_RESULTS_TEXT,
			},
		}
	}

	s.store.Apply(patch)
	s.persist()

	log.Info().
		Str("search_id", patch.Search.ID).
		Int("results", len(patch.Search.Results)).
		Msg("search merged")

	return FetchResult{
		Status:   StatusSuccess,
		SearchID: patch.Search.ID,
		Message:  Message{Type: MessageSuccess},
	}
}

// FetchVenuePhotos fetches a venue's photos and merges them into the
// existing venue entity without touching its other fields.
func (s *SearchService) FetchVenuePhotos(venueID string) FetchResult {
	resp, err := s.foursquareAPI.GetVenuePhotos(venueID)
	if err != nil {
		log.Error().Err(err).Str("venue_id", venueID).Msg("venue photos request failed")
		return errorResult(err)
	}

	s.store.Apply(normalizer.NormalizeVenue(resp, venueID, 0))
	s.persist()

	return FetchResult{Status: StatusSuccess, VenueID: venueID, Message: Message{Type: MessageSuccess}}
}

// FetchVenueTips fetches one page of tips at the given offset and merges it.
// Offset ordering is up to the caller; the merge policy is last-write-wins.
func (s *SearchService) FetchVenueTips(venueID string, offset int) FetchResult {
	resp, err := s.foursquareAPI.GetVenueTips(venueID, offset)
	if err != nil {
		log.Error().Err(err).Str("venue_id", venueID).Int("offset", offset).Msg("venue tips request failed")
		return errorResult(err)
	}

	s.store.Apply(normalizer.NormalizeVenue(resp, venueID, offset))
	s.persist()

	return FetchResult{Status: StatusSuccess, VenueID: venueID, Message: Message{Type: MessageSuccess}}
}

// ClearAll discards the whole state and its persisted snapshot.
func (s *SearchService) ClearAll() FetchResult {
	s.store.Clear()
	if err := s.stateDao.ClearSnapshot(); err != nil {
		log.Error().Err(err).Msg("failed to clear state snapshot")
		return errorResult(err)
	}

	log.Info().Msg("cleared state and snapshot")
	return FetchResult{
		Status:  StatusSuccess,
		Message: Message{Type: MessageSuccess, Text: config.MSG_CLEARED_ALL},
	}
}

// Results projects a stored search into its results view.
func (s *SearchService) Results(searchID string) projector.ResultsView {
	return projector.ProjectResults(s.store.Snapshot(), searchID, time.Now())
}

// Venue projects a stored venue into its detail view.
func (s *SearchService) Venue(venueID string) projector.VenueView {
	return projector.ProjectVenue(s.store.Snapshot(), venueID)
}

// persist writes the snapshot after a successful merge. Persistence is best
// effort: a failed write costs durability, not correctness, so it only logs.
func (s *SearchService) persist() {
	if err := s.stateDao.SaveSnapshot(s.store.Snapshot()); err != nil {
		log.Error().Err(err).Msg("failed to persist state snapshot")
	}
}

func errorResult(err error) FetchResult {
	var apiErr *foursquare.APIError
	if errors.As(err, &apiErr) {
		return FetchResult{
			Status: StatusError,
			Message: Message{
				Type:  MessageError,
				Title: config.MSG_API_RESPONSE_TITLE,
				Text:  apiErr.ErrorDetail,
			},
		}
	}
	return FetchResult{
		Status: StatusError,
		Message: Message{
			Type:  MessageError,
			Title: config.MSG_ERROR_TITLE,
			Text:  err.Error(),
		},
	}
}
