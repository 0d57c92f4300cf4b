package services

import (
	"errors"
	"testing"

	"foursquared/api/foursquare"
	"foursquared/config"
	redisdao "foursquared/dao/redis"
	"foursquared/db"
	"foursquared/models"
	"foursquared/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFoursquareAPI returns whatever the test arranges, recording call args.
type stubFoursquareAPI struct {
	exploreResp *models.ExploreResponse
	exploreErr  error
	detailResp  *models.VenueDetailResponse
	detailErr   error

	lastVenueID string
	lastOffset  int
}

func (s *stubFoursquareAPI) Explore(query, near string) (*models.ExploreResponse, error) {
	return s.exploreResp, s.exploreErr
}

func (s *stubFoursquareAPI) GetVenuePhotos(venueID string) (*models.VenueDetailResponse, error) {
	s.lastVenueID = venueID
	return s.detailResp, s.detailErr
}

func (s *stubFoursquareAPI) GetVenueTips(venueID string, offset int) (*models.VenueDetailResponse, error) {
	s.lastVenueID = venueID
	s.lastOffset = offset
	return s.detailResp, s.detailErr
}

func (s *stubFoursquareAPI) SetCredentials(clientID, clientSecret string) {}

func newTestService(api foursquare.FoursquareAPI) (*SearchService, *store.Store, *db.MockRedisClient) {
	st := store.NewStore()
	client := db.NewMockRedisClient()
	dao := redisdao.NewRedisStateDAO(client)
	return NewSearchService(st, dao, api), st, client
}

func exploreResponse() *models.ExploreResponse {
	return &models.ExploreResponse{
		Meta: models.Meta{Code: 200, RequestID: "req-1"},
		Response: models.ExploreBody{
			Query:   "coffee",
			Geocode: models.RawGeocode{Where: "berlin", DisplayString: "Berlin, Germany"},
			Groups: []models.RawGroup{
				{Type: "Recommended Places", Items: []models.RawExploreItem{
					{Venue: models.RawVenue{ID: "v1", Name: "Five Elephant", Rating: 9.2}},
				}},
			},
		},
	}
}

func TestSearch_SuccessMergesAndPersists(t *testing.T) {
	api := &stubFoursquareAPI{exploreResp: exploreResponse()}
	service, st, client := newTestService(api)

	result := service.Search("coffee", "berlin")

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "req-1", result.SearchID)
	assert.Equal(t, MessageSuccess, result.Message.Type)

	snap := st.Snapshot()
	require.Contains(t, snap.Searches, "req-1")
	assert.Equal(t, []string{"v1"}, snap.Searches["req-1"].Results)
	assert.Equal(t, "Five Elephant", snap.Entities.Venues["v1"].Name)

	// A snapshot was persisted.
	_, err := client.Get(redisdao.STATE_SNAPSHOT_KEY_V1)
	assert.NoError(t, err)
}

func TestSearch_GeneratesIDWhenAPIOmitsRequestID(t *testing.T) {
	resp := exploreResponse()
	resp.Meta.RequestID = ""
	api := &stubFoursquareAPI{exploreResp: resp}
	service, st, _ := newTestService(api)

	result := service.Search("coffee", "berlin")

	assert.Equal(t, StatusSuccess, result.Status)
	require.NotEmpty(t, result.SearchID)
	assert.Contains(t, st.Snapshot().Searches, result.SearchID)
}

func TestSearch_EmptyResultsDoNotMerge(t *testing.T) {
	resp := exploreResponse()
	resp.Response.Groups = nil
	api := &stubFoursquareAPI{exploreResp: resp}
	service, st, client := newTestService(api)

	result := service.Search("coffee", "atlantis")

	assert.Equal(t, StatusEmpty, result.Status)
	assert.Equal(t, MessageWarning, result.Message.Type)
	assert.Equal(t, config.MSG_API_RESPONSE_TITLE, result.Message.Title)
	assert.Equal(t, config.MSG_NO_RESULTS_TEXT, result.Message.Text)

	assert.Empty(t, st.Snapshot().Searches)
	_, err := client.Get(redisdao.STATE_SNAPSHOT_KEY_V1)
	assert.ErrorIs(t, err, db.ErrKeyNotFound)
}

func TestSearch_APIErrorBecomesTypedMessage(t *testing.T) {
	api := &stubFoursquareAPI{exploreErr: &foursquare.APIError{
		Code:        400,
		ErrorType:   "failed_geocode",
		ErrorDetail: "Couldn't geocode param near: nowhere",
	}}
	service, st, _ := newTestService(api)

	result := service.Search("coffee", "nowhere")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, MessageError, result.Message.Type)
	assert.Equal(t, config.MSG_API_RESPONSE_TITLE, result.Message.Title)
	assert.Equal(t, "Couldn't geocode param near: nowhere", result.Message.Text)
	assert.Empty(t, st.Snapshot().Searches)
}

func TestSearch_TransportErrorUsesGenericTitle(t *testing.T) {
	api := &stubFoursquareAPI{exploreErr: errors.New("connection refused")}
	service, _, _ := newTestService(api)

	result := service.Search("coffee", "berlin")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, config.MSG_ERROR_TITLE, result.Message.Title)
	assert.Equal(t, "connection refused", result.Message.Text)
}

func TestFetchVenuePhotos_MergesIntoExistingVenue(t *testing.T) {
	api := &stubFoursquareAPI{exploreResp: exploreResponse()}
	service, st, _ := newTestService(api)
	require.Equal(t, StatusSuccess, service.Search("coffee", "berlin").Status)

	api.detailResp = &models.VenueDetailResponse{
		Meta: models.Meta{Code: 200},
		Response: models.VenueDetailBody{
			Photos: &models.RawPhotoList{Count: 1, Items: []models.RawPhoto{
				{ID: "p9", Prefix: "http://img/", Suffix: "/p9.jpg", User: models.RawUser{ID: "u1", FirstName: "Jane"}},
			}},
		},
	}

	result := service.FetchVenuePhotos("v1")

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "v1", result.VenueID)
	assert.Equal(t, "v1", api.lastVenueID)

	venue := st.Snapshot().Entities.Venues["v1"]
	require.Len(t, venue.Photos, 1)
	assert.Equal(t, "p9", venue.Photos[0].ID)
	// Core fields survive the detail merge.
	assert.Equal(t, "Five Elephant", venue.Name)
	assert.Equal(t, 9.2, venue.Rating)
}

func TestFetchVenueTips_PassesOffsetAndMerges(t *testing.T) {
	api := &stubFoursquareAPI{exploreResp: exploreResponse()}
	service, st, _ := newTestService(api)
	require.Equal(t, StatusSuccess, service.Search("coffee", "berlin").Status)

	api.detailResp = &models.VenueDetailResponse{
		Meta: models.Meta{Code: 200},
		Response: models.VenueDetailBody{
			Tips: &models.RawTipList{Count: 12, Items: []models.RawTip{
				{ID: "t9", Text: "Nice.", User: models.RawUser{ID: "u1", FirstName: "Jane"}},
			}},
		},
	}

	result := service.FetchVenueTips("v1", 10)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 10, api.lastOffset)

	venue := st.Snapshot().Entities.Venues["v1"]
	require.Len(t, venue.Tips, 1)
	assert.Equal(t, "t9", venue.Tips[0].ID)
	assert.Equal(t, 10, venue.TipsOffset)
}

func TestClearAll(t *testing.T) {
	api := &stubFoursquareAPI{exploreResp: exploreResponse()}
	service, st, client := newTestService(api)
	require.Equal(t, StatusSuccess, service.Search("coffee", "berlin").Status)

	result := service.ClearAll()

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, config.MSG_CLEARED_ALL, result.Message.Text)
	assert.Empty(t, st.Snapshot().Searches)
	_, err := client.Get(redisdao.STATE_SNAPSHOT_KEY_V1)
	assert.ErrorIs(t, err, db.ErrKeyNotFound)
}

func TestHydrate_RestoresPersistedState(t *testing.T) {
	api := &stubFoursquareAPI{exploreResp: exploreResponse()}
	service, _, client := newTestService(api)
	require.Equal(t, StatusSuccess, service.Search("coffee", "berlin").Status)

	// A second service over the same Redis picks the state back up.
	restored := NewSearchService(store.NewStore(), redisdao.NewRedisStateDAO(client), api)
	require.NoError(t, restored.Hydrate())

	view := restored.Results("req-1")
	assert.Equal(t, "coffee", view.CurrentFetch.Query)
	require.Len(t, view.CurrentFetch.Results, 1)
	assert.Equal(t, "v1", view.CurrentFetch.Results[0].ID)
}

func TestResultsAndVenue_ProjectFromStore(t *testing.T) {
	api := &stubFoursquareAPI{exploreResp: exploreResponse()}
	service, _, _ := newTestService(api)
	require.Equal(t, StatusSuccess, service.Search("coffee", "berlin").Status)

	results := service.Results("req-1")
	assert.Equal(t, "Coffee in Berlin", results.CurrentFetch.Title)

	venueView := service.Venue("v1")
	assert.Equal(t, "Five Elephant", venueView.Venue.Name)

	missing := service.Venue("nope")
	assert.Equal(t, "", missing.Venue.ID)
}
