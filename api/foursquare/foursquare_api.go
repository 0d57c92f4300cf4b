package foursquare

import (
	"foursquared/models"
)

// FoursquareAPI defines the interface for interacting with the Foursquare API
type FoursquareAPI interface {
	Explore(query, near string) (*models.ExploreResponse, error)
	GetVenuePhotos(venueID string) (*models.VenueDetailResponse, error)
	GetVenueTips(venueID string, offset int) (*models.VenueDetailResponse, error)
	SetCredentials(clientID, clientSecret string)
}
