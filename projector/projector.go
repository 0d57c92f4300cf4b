// Package projector derives render-ready view models from the normalized
// state by joining entities back together via their reference ids. All
// functions are pure: same state and id in, same view out.
package projector

import (
	"fmt"
	"time"

	"foursquared/config"
	"foursquared/store"
	"foursquared/util"
)

// ResultsView is what a results page needs: the requested search resolved
// into venue tuples plus a sidebar of every search made so far.
type ResultsView struct {
	CurrentFetch CurrentFetch   `json:"currentFetch"`
	Searches     []SidebarEntry `json:"searches"`
}

// CurrentFetch carries the resolved search. All fields stay at their empty
// defaults when the requested search id is unknown.
type CurrentFetch struct {
	Query     string       `json:"query"`
	Near      string       `json:"near"`
	Title     string       `json:"title"`
	LongTitle string       `json:"longTitle"`
	Results   []VenueTuple `json:"results"`
}

// VenueTuple is one search result row.
type VenueTuple struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Price   *int    `json:"price"`
	HereNow *int    `json:"hereNow"`
	Photo   string  `json:"photo"`
}

// SidebarEntry is one recent-search link.
type SidebarEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	LongTitle string `json:"longTitle"`
}

// VenueView is what a venue detail page needs. Venue.ID is empty when the
// requested venue is unknown; callers redirect away instead of rendering.
type VenueView struct {
	Venue VenueDetail `json:"venue"`
}

type VenueDetail struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Rating     float64        `json:"rating"`
	Address    string         `json:"address"`
	Phone      string         `json:"phone"`
	Price      *int           `json:"price"`
	HereNow    *int           `json:"hereNow"`
	TipsCount  int            `json:"tipsCount"`
	TipsOffset int            `json:"tipsOffset"`
	Categories []CategoryView `json:"categories"`
	Photos     []PhotoView    `json:"photos"`
	Tips       []TipView      `json:"tips"`
}

type CategoryView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

type PhotoView struct {
	ID        string `json:"id"`
	Src       string `json:"src"`
	Name      string `json:"name"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
}

type TipView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	UserPhoto string `json:"userPhoto"`
	UserName  string `json:"userName"`
}

// ProjectResults resolves a search id into a ResultsView. An unknown id
// yields an empty CurrentFetch with the sidebar intact, never an error, so
// display surfaces can render a uniform "no results" state.
func ProjectResults(state *store.State, searchID string, now time.Time) ResultsView {
	view := ResultsView{
		CurrentFetch: CurrentFetch{Results: []VenueTuple{}},
		Searches:     []SidebarEntry{},
	}

	// Sidebar in store order, most recent search first.
	for _, id := range state.SearchOrder {
		sr, ok := state.Searches[id]
		if !ok {
			continue
		}
		view.Searches = append(view.Searches, SidebarEntry{
			ID:        id,
			Title:     shortTitle(sr.Query, sr.Near),
			LongTitle: longTitle(sr, now),
		})
	}

	current, ok := state.Searches[searchID]
	if !ok {
		return view
	}

	view.CurrentFetch.Query = current.Query
	view.CurrentFetch.Near = current.Near
	view.CurrentFetch.Title = shortTitle(current.Query, current.Near)
	view.CurrentFetch.LongTitle = longTitle(current, now)

	for _, venueID := range current.Results {
		venue, ok := state.Entities.Venues[venueID]
		if !ok {
			continue
		}
		view.CurrentFetch.Results = append(view.CurrentFetch.Results, VenueTuple{
			ID:      venueID,
			Name:    venue.Name,
			Rating:  venue.Rating,
			Price:   venue.Price,
			HereNow: venue.HereNow,
			Photo:   pickPhoto(venue.Photos),
		})
	}

	return view
}

// ProjectVenue resolves a venue id into a VenueView with categories, photos
// and tips joined through their referenced entities. An unknown id yields
// the empty sentinel view.
func ProjectVenue(state *store.State, venueID string) VenueView {
	venue, ok := state.Entities.Venues[venueID]
	if !ok {
		return VenueView{}
	}

	detail := VenueDetail{
		ID:         venue.ID,
		Name:       venue.Name,
		Rating:     venue.Rating,
		Address:    venue.Address,
		Phone:      venue.Phone,
		Price:      venue.Price,
		HereNow:    venue.HereNow,
		TipsCount:  venue.TipsCount,
		TipsOffset: venue.TipsOffset,
		Categories: []CategoryView{},
		Photos:     []PhotoView{},
		Tips:       []TipView{},
	}

	for _, catID := range venue.Categories {
		cat, ok := state.Entities.Categories[catID]
		if !ok {
			continue
		}
		detail.Categories = append(detail.Categories, CategoryView{
			ID:      catID,
			Name:    cat.Name,
			IconURL: cat.IconURL,
		})
	}

	for _, photo := range venue.Photos {
		user := state.Entities.Users[photo.UserID]
		detail.Photos = append(detail.Photos, PhotoView{
			ID:        photo.ID,
			Src:       photo.URL,
			Name:      photoCaption(photo.Type, user.Name),
			UserName:  user.Name,
			UserPhoto: user.PhotoURL,
		})
	}

	for _, tip := range venue.Tips {
		user := state.Entities.Users[tip.UserID]
		detail.Tips = append(detail.Tips, TipView{
			ID:        tip.ID,
			Text:      tip.Text,
			UserPhoto: user.PhotoURL,
			UserName:  user.Name,
		})
	}

	return VenueView{Venue: detail}
}

// pickPhoto prefers the first photo shot of the venue itself, then any photo
// at all, then the placeholder.
func pickPhoto(photos []store.Photo) string {
	for _, ph := range photos {
		if ph.Type == "venue" {
			return ph.URL
		}
	}
	if len(photos) > 0 {
		return photos[0].URL
	}
	return config.PLACEHOLDER_IMAGE_URL
}

func photoCaption(photoType, userName string) string {
	return util.Capitalize(photoType) + " photo from " + userName
}

func shortTitle(query, near string) string {
	return util.Capitalize(query) + config.SEARCH_RESULT_SEP + util.Capitalize(near)
}

func longTitle(sr store.Search, now time.Time) string {
	return fmt.Sprintf("You searched for %s%s%s %s and Foursquare's matching results are from the location '%s'.",
		util.Capitalize(sr.Query),
		config.SEARCH_RESULT_SEP,
		util.Capitalize(sr.Near),
		util.TimeAgo(sr.CreatedAt, now),
		util.Capitalize(sr.Location),
	)
}
