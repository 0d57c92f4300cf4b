package foursquare

import (
	"fmt"
	"net/url"
	"strconv"

	"foursquared/api"
	"foursquared/config"
	"foursquared/models"
)

// APIError is the Foursquare meta envelope reported as an error, e.g.
// code 400 / failed_geocode when the 'near' parameter cannot be resolved.
type APIError struct {
	Code        int
	ErrorType   string
	ErrorDetail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("foursquare api error %d (%s): %s", e.Code, e.ErrorType, e.ErrorDetail)
}

// FoursquareApiClient embeds the common HTTPClient
type FoursquareApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	clientID     string
	clientSecret string
}

// NewFoursquareApiClient creates a new instance of FoursquareApiClient
func NewFoursquareApiClient(httpClient *api.HTTPClient) *FoursquareApiClient {
	return &FoursquareApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the userless-auth credential pair appended to every
// request.
func (c *FoursquareApiClient) SetCredentials(clientID, clientSecret string) {
	c.clientID = clientID
	c.clientSecret = clientSecret
}

// Explore runs a keyword/location search and decodes the ranked result
// groups.
func (c *FoursquareApiClient) Explore(query, near string) (*models.ExploreResponse, error) {
	params := c.creds()
	params.Set("query", query)
	params.Set("near", near)
	params.Set("venuePhotos", "1")
	params.Set("limit", strconv.Itoa(config.FOURSQUARE_SEARCH_LIMIT))

	var response models.ExploreResponse
	err := c.Request("GET", config.FOURSQUARE_VENUES_GROUP+"/explore?"+params.Encode(), nil, nil, &response)
	if err := checkMeta(&response.Meta, err); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenuePhotos fetches the photo list of a venue.
func (c *FoursquareApiClient) GetVenuePhotos(venueID string) (*models.VenueDetailResponse, error) {
	params := c.creds()
	params.Set("limit", strconv.Itoa(config.FOURSQUARE_SEARCH_LIMIT))

	var response models.VenueDetailResponse
	err := c.Request("GET", config.FOURSQUARE_VENUES_GROUP+"/"+venueID+"/photos?"+params.Encode(), nil, nil, &response)
	if err := checkMeta(&response.Meta, err); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenueTips fetches one page of a venue's tips starting at offset.
func (c *FoursquareApiClient) GetVenueTips(venueID string, offset int) (*models.VenueDetailResponse, error) {
	params := c.creds()
	params.Set("sort", "recent")
	params.Set("limit", strconv.Itoa(config.FOURSQUARE_TIPS_PAGE_SIZE))
	params.Set("offset", strconv.Itoa(offset))

	var response models.VenueDetailResponse
	err := c.Request("GET", config.FOURSQUARE_VENUES_GROUP+"/"+venueID+"/tips?"+params.Encode(), nil, nil, &response)
	if err := checkMeta(&response.Meta, err); err != nil {
		return nil, err
	}
	return &response, nil
}

// creds builds the query parameters every userless-auth request carries.
// See developer.foursquare.com/docs/api/configuration/authentication
func (c *FoursquareApiClient) creds() url.Values {
	params := url.Values{}
	params.Set("v", config.FOURSQUARE_API_VERSION)
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)
	return params
}

// checkMeta prefers the decoded meta envelope over the raw transport error:
// the API answers failed requests with a JSON body explaining what went
// wrong, which beats "unexpected status code: 400 Bad Request".
func checkMeta(meta *models.Meta, reqErr error) error {
	if meta.Code != 0 && meta.Code != 200 {
		return &APIError{
			Code:        meta.Code,
			ErrorType:   meta.ErrorType,
			ErrorDetail: meta.ErrorDetail,
		}
	}
	return reqErr
}
