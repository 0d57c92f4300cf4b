package models

// ExploreResponse mirrors the venues/explore endpoint. The interesting parts
// for normalization are:
//
//	|- meta
//	|   |- requestId
//	|- response
//	    |- query
//	    |- geocode
//	    |   |- where
//	    |   |- displayString
//	    |- groups[]
//	        |- items[]
//	            |- tips[]
//	            |- venue
type ExploreResponse struct {
	Meta     Meta        `json:"meta"`
	Response ExploreBody `json:"response"`
}

type ExploreBody struct {
	Query   string      `json:"query"`
	Geocode RawGeocode  `json:"geocode"`
	Groups  []RawGroup  `json:"groups"`
	Warning *RawWarning `json:"warning,omitempty"`
}

// RawGeocode echoes the 'near' parameter (Where) next to the location the
// API actually resolved it to (DisplayString).
type RawGeocode struct {
	Where         string `json:"where"`
	DisplayString string `json:"displayString"`
}

type RawWarning struct {
	Text string `json:"text"`
}

// RawGroup is one ranked result group ("recommended", "picks", ...).
type RawGroup struct {
	Type  string           `json:"type"`
	Name  string           `json:"name"`
	Items []RawExploreItem `json:"items"`
}

// RawExploreItem bundles a venue with the tips the API attaches to it.
type RawExploreItem struct {
	Venue RawVenue `json:"venue"`
	Tips  []RawTip `json:"tips,omitempty"`
}
