// Package store holds the normalized entity state and the merge policy that
// folds normalization patches into it.
package store

import "time"

// User is a normalized tip/photo author.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

// Category is a normalized venue category.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// Photo references its author by id instead of embedding the user.
type Photo struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	URL    string `json:"url"`
	UserID string `json:"userId"`
}

// Tip references its author by id instead of embedding the user.
type Tip struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

// Venue is the normalized venue entity. Price and HereNow stay nil when the
// API never reported them, which is different from a zero value.
type Venue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Price      *int     `json:"price"`
	HereNow    *int     `json:"hereNow"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Categories []string `json:"categories"`
	Photos     []Photo  `json:"photos"`
	Tips       []Tip    `json:"tips"`
	TipsOffset int      `json:"tipsOffset"`
	TipsCount  int      `json:"tipsCount"`
}

// Search is one successful explore request. Immutable once stored; venue
// detail fetches only touch the venues it references.
type Search struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Near      string    `json:"near"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	Results   []string  `json:"results"`
}

// Entities is the flat, deduplicated entity graph.
type Entities struct {
	Users      map[string]User     `json:"users"`
	Categories map[string]Category `json:"categories"`
	Venues     map[string]Venue    `json:"venues"`
}

// State is everything the service accumulates: the searches made so far plus
// the entity graph they reference. SearchOrder keeps the sidebar order, most
// recent search first.
type State struct {
	Searches    map[string]Search `json:"searches"`
	SearchOrder []string          `json:"searchOrder"`
	Entities    Entities          `json:"entities"`
}

// NewState returns an empty state with all maps allocated.
func NewState() *State {
	return &State{
		Searches: make(map[string]Search),
		Entities: Entities{
			Users:      make(map[string]User),
			Categories: make(map[string]Category),
			Venues:     make(map[string]Venue),
		},
	}
}

// VenuePatch is a partial venue update produced by one normalization pass.
// An explore pass supplies the full scalar core (Core set); a venue detail
// pass carries only photos/tips and possibly a tips offset.
type VenuePatch struct {
	ID         string
	Core       *VenueCore
	Photos     []Photo
	Tips       []Tip
	TipsOffset *int
}

// VenueCore is the scalar part of a venue an explore response reports.
type VenueCore struct {
	Name       string
	Rating     float64
	Price      *int
	HereNow    *int
	Address    string
	Phone      string
	Categories []string
	TipsCount  int
}

// Patch is the output of one normalization pass, ready for merging.
type Patch struct {
	Search     *Search
	Users      map[string]User
	Categories map[string]Category
	Venues     map[string]VenuePatch
}

// NewPatch returns an empty patch with all maps allocated.
func NewPatch() *Patch {
	return &Patch{
		Users:      make(map[string]User),
		Categories: make(map[string]Category),
		Venues:     make(map[string]VenuePatch),
	}
}
