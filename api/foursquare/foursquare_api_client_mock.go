package foursquare

import (
	"foursquared/config"
	"foursquared/models"
	"foursquared/util"
)

// FoursquareApiClientMock serves canned responses from the resources
// directory so the service can run without API credentials.
type FoursquareApiClientMock struct {
}

// NewFoursquareApiClientMock creates a new instance of FoursquareApiClientMock
func NewFoursquareApiClientMock() *FoursquareApiClientMock {
	return &FoursquareApiClientMock{}
}

// Explore returns the canned explore response regardless of query/near.
func (c *FoursquareApiClientMock) Explore(query, near string) (*models.ExploreResponse, error) {
	return util.ReadExploreResponseFromJSON(config.GetResourcePath(config.EXPLORE_RESPONSE_RESOURCE))
}

// GetVenuePhotos returns the canned venue photos response.
func (c *FoursquareApiClientMock) GetVenuePhotos(venueID string) (*models.VenueDetailResponse, error) {
	return util.ReadVenueDetailResponseFromJSON(config.GetResourcePath(config.VENUE_PHOTOS_RESPONSE_RESOURCE))
}

// GetVenueTips returns the canned venue tips response for any offset.
func (c *FoursquareApiClientMock) GetVenueTips(venueID string, offset int) (*models.VenueDetailResponse, error) {
	return util.ReadVenueDetailResponseFromJSON(config.GetResourcePath(config.VENUE_TIPS_RESPONSE_RESOURCE))
}

// SetCredentials is a no-op for the mock.
func (c *FoursquareApiClientMock) SetCredentials(clientID, clientSecret string) {}
