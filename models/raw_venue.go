package models

// RawVenue is a venue exactly as the explore endpoint nests it. Fields the
// API sometimes omits are pointers so absence survives decoding.
type RawVenue struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Rating     float64       `json:"rating,omitempty"`
	Price      *RawPrice     `json:"price,omitempty"`
	HereNow    *RawHereNow   `json:"hereNow,omitempty"`
	Location   *RawLocation  `json:"location,omitempty"`
	Contact    *RawContact   `json:"contact,omitempty"`
	Categories []RawCategory `json:"categories"`
	Photos     *RawPhotos    `json:"photos,omitempty"`
	Stats      *RawStats     `json:"stats,omitempty"`
}

type RawPrice struct {
	Tier *int `json:"tier,omitempty"`
}

type RawHereNow struct {
	Count *int `json:"count,omitempty"`
}

type RawLocation struct {
	Address string `json:"address,omitempty"`
}

type RawContact struct {
	Phone string `json:"phone,omitempty"`
}

type RawStats struct {
	TipCount int `json:"tipCount,omitempty"`
}

// RawCategory carries the category id/name plus the icon url parts.
type RawCategory struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon RawIcon `json:"icon"`
}

// RawIcon is the prefix/suffix pair the API expects the client to join with
// a size, e.g. prefix + "88" + suffix.
type RawIcon struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// RawPhotos groups venue photos by semantic type ("venue", "checkin", ...).
type RawPhotos struct {
	Count  int             `json:"count"`
	Groups []RawPhotoGroup `json:"groups"`
}

type RawPhotoGroup struct {
	Type  string     `json:"type"`
	Name  string     `json:"name,omitempty"`
	Count int        `json:"count,omitempty"`
	Items []RawPhoto `json:"items"`
}

// RawPhoto is a single photo; the url is built from prefix + size + suffix.
type RawPhoto struct {
	ID     string  `json:"id"`
	Prefix string  `json:"prefix"`
	Suffix string  `json:"suffix"`
	User   RawUser `json:"user"`
}

type RawUser struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Photo     *RawIcon `json:"photo,omitempty"`
}

type RawTip struct {
	ID   string  `json:"id"`
	Text string  `json:"text"`
	User RawUser `json:"user"`
}
