package models

// VenueDetailResponse covers the venues/VENUE_ID/photos and
// venues/VENUE_ID/tips endpoints. Either list may be present depending on
// which endpoint was hit; both absent is a valid (empty) response. The venue
// id itself is not part of the payload, callers carry it separately.
type VenueDetailResponse struct {
	Meta     Meta            `json:"meta"`
	Response VenueDetailBody `json:"response"`
}

type VenueDetailBody struct {
	Photos *RawPhotoList `json:"photos,omitempty"`
	Tips   *RawTipList   `json:"tips,omitempty"`
}

type RawPhotoList struct {
	Count int        `json:"count"`
	Items []RawPhoto `json:"items"`
}

type RawTipList struct {
	Count int      `json:"count"`
	Items []RawTip `json:"items"`
}
