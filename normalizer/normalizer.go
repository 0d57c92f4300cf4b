// Package normalizer converts raw Foursquare API responses into flat,
// deduplicated entity patches ready for merging into the store.
package normalizer

import (
	"fmt"
	"time"

	"foursquared/config"
	"foursquared/models"
	"foursquared/store"
	"foursquared/util"
)

// NormalizeExplore flattens an explore response into a search record plus an
// entity patch. Only the first result group is processed; the API ranks its
// recommended group first and the rest restate the same venues.
//
// Optional venue fields degrade to defaults (rating 0, price/hereNow nil,
// address/phone "", tipsCount 0) instead of failing. The function never
// errors for a decoded payload; shape validation happens at the transport
// layer.
func NormalizeExplore(resp *models.ExploreResponse, now time.Time) *store.Patch {
	patch := store.NewPatch()
	search := &store.Search{
		ID:        resp.Meta.RequestID,
		Query:     resp.Response.Query,
		Near:      resp.Response.Geocode.Where,
		Location:  resp.Response.Geocode.DisplayString,
		CreatedAt: now,
		Results:   []string{},
	}
	patch.Search = search

	if len(resp.Response.Groups) == 0 {
		return patch
	}

	for _, item := range resp.Response.Groups[0].Items {
		v := item.Venue

		// Result order reflects the API ranking.
		search.Results = append(search.Results, v.ID)

		catRefs := normalizeCategories(v.Categories, patch)

		var photos []store.Photo
		if v.Photos != nil {
			for _, group := range v.Photos.Groups {
				photos = append(photos, normalizePhotos(group.Items, group.Type, patch)...)
			}
		}

		tips := normalizeTips(item.Tips, patch)

		offset := 0
		patch.Venues[v.ID] = store.VenuePatch{
			ID: v.ID,
			Core: &store.VenueCore{
				Name:       v.Name,
				Rating:     v.Rating,
				Price:      priceTier(v.Price),
				HereNow:    hereNowCount(v.HereNow),
				Address:    venueAddress(v.Location),
				Phone:      venuePhone(v.Contact),
				Categories: catRefs,
				TipsCount:  tipCount(v.Stats),
			},
			Photos:     photos,
			Tips:       tips,
			TipsOffset: &offset,
		}
	}

	return patch
}

// NormalizeVenue flattens a venue detail response (photos and/or tips) into
// a partial venue patch. The venue id is supplied by the caller because the
// response does not carry it, and tipsOffset is the offset the tips page was
// requested at. A response with neither list yields a valid no-op patch.
func NormalizeVenue(resp *models.VenueDetailResponse, venueID string, tipsOffset int) *store.Patch {
	patch := store.NewPatch()
	vp := store.VenuePatch{ID: venueID}

	if tipsOffset > 0 {
		vp.TipsOffset = &tipsOffset
	}

	if resp.Response.Photos != nil && len(resp.Response.Photos.Items) > 0 {
		vp.Photos = normalizePhotos(resp.Response.Photos.Items, "venue", patch)
	}

	if resp.Response.Tips != nil && len(resp.Response.Tips.Items) > 0 {
		vp.Tips = normalizeTips(resp.Response.Tips.Items, patch)
	}

	patch.Venues[venueID] = vp
	return patch
}

// normalizePhotos flattens one photo list, tagging every photo with the
// semantic type of its source group and extracting the authors as user
// entities. The author's avatar falls back to the photo itself, which is
// what the API serves when the user profile carries no picture parts.
func normalizePhotos(items []models.RawPhoto, photoType string, patch *store.Patch) []store.Photo {
	photos := make([]store.Photo, 0, len(items))

	for _, ph := range items {
		url := photoURL(ph.Prefix, ph.Suffix)

		patch.Users[ph.User.ID] = store.User{
			ID:       ph.User.ID,
			Name:     util.BuildName(ph.User.FirstName, ph.User.LastName),
			PhotoURL: url,
		}

		photos = append(photos, store.Photo{
			ID:     ph.ID,
			Type:   photoType,
			URL:    url,
			UserID: ph.User.ID,
		})
	}

	return photos
}

// normalizeTips flattens one tip list, extracting every author as a user
// entity referenced by id from the tip record.
func normalizeTips(items []models.RawTip, patch *store.Patch) []store.Tip {
	if len(items) == 0 {
		return nil
	}

	tips := make([]store.Tip, 0, len(items))
	for _, tp := range items {
		avatar := ""
		if tp.User.Photo != nil {
			avatar = photoURL(tp.User.Photo.Prefix, tp.User.Photo.Suffix)
		}

		patch.Users[tp.User.ID] = store.User{
			ID:       tp.User.ID,
			Name:     util.BuildName(tp.User.FirstName, tp.User.LastName),
			PhotoURL: avatar,
		}

		tips = append(tips, store.Tip{
			ID:     tp.ID,
			Text:   tp.Text,
			UserID: tp.User.ID,
		})
	}

	return tips
}

// normalizeCategories extracts category entities and returns the id refs in
// input order.
func normalizeCategories(items []models.RawCategory, patch *store.Patch) []string {
	refs := make([]string, 0, len(items))
	for _, cat := range items {
		patch.Categories[cat.ID] = store.Category{
			ID:      cat.ID,
			Name:    cat.Name,
			IconURL: iconURL(cat.Icon.Prefix, cat.Icon.Suffix),
		}
		refs = append(refs, cat.ID)
	}
	return refs
}

func photoURL(prefix, suffix string) string {
	return fmt.Sprintf("%s%d%s", prefix, config.FOURSQUARE_PHOTO_SIZE, suffix)
}

func iconURL(prefix, suffix string) string {
	return fmt.Sprintf("%s%d%s", prefix, config.FOURSQUARE_CATEGORY_ICON_SIZE, suffix)
}

func priceTier(p *models.RawPrice) *int {
	if p == nil || p.Tier == nil {
		return nil
	}
	tier := *p.Tier
	return &tier
}

func hereNowCount(h *models.RawHereNow) *int {
	if h == nil || h.Count == nil {
		return nil
	}
	count := *h.Count
	return &count
}

func venueAddress(l *models.RawLocation) string {
	if l == nil {
		return ""
	}
	return l.Address
}

func venuePhone(c *models.RawContact) string {
	if c == nil {
		return ""
	}
	return c.Phone
}

func tipCount(s *models.RawStats) int {
	if s == nil {
		return 0
	}
	return s.TipCount
}
