package store

// Merge folds a normalization patch into the state.
//
// The policy is deterministic so two normalizations of the same entity can
// never conflict loudly: scalar fields are last-write-wins, entity arrays
// (photos, tips, category id lists) are unioned by id preserving first-seen
// order, and the tips offset/count are only touched when the patch supplies
// them. Tips offset ordering is caller discipline, not enforced here.
func Merge(dst *State, p *Patch) {
	if p == nil {
		return
	}

	if p.Search != nil {
		if _, exists := dst.Searches[p.Search.ID]; !exists {
			dst.Searches[p.Search.ID] = *p.Search
			// Newest search goes to the front of the sidebar.
			dst.SearchOrder = append([]string{p.Search.ID}, dst.SearchOrder...)
		}
	}

	for id, u := range p.Users {
		dst.Entities.Users[id] = u
	}
	for id, c := range p.Categories {
		dst.Entities.Categories[id] = c
	}
	for id, vp := range p.Venues {
		merged := mergeVenue(dst.Entities.Venues[id], vp)
		merged.ID = id
		dst.Entities.Venues[id] = merged
	}
}

func mergeVenue(current Venue, p VenuePatch) Venue {
	if p.Core != nil {
		current.Name = p.Core.Name
		current.Rating = p.Core.Rating
		current.Price = p.Core.Price
		current.HereNow = p.Core.HereNow
		current.Address = p.Core.Address
		current.Phone = p.Core.Phone
		current.TipsCount = p.Core.TipsCount
		current.Categories = unionIDs(current.Categories, p.Core.Categories)
	}

	current.Photos = unionPhotos(current.Photos, p.Photos)
	current.Tips = unionTips(current.Tips, p.Tips)

	if p.TipsOffset != nil {
		current.TipsOffset = *p.TipsOffset
	}

	return current
}

func unionIDs(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range incoming {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		existing = append(existing, id)
	}
	return existing
}

func unionPhotos(existing, incoming []Photo) []Photo {
	seen := make(map[string]struct{}, len(existing))
	for _, ph := range existing {
		seen[ph.ID] = struct{}{}
	}
	for _, ph := range incoming {
		if _, dup := seen[ph.ID]; dup {
			continue
		}
		seen[ph.ID] = struct{}{}
		existing = append(existing, ph)
	}
	return existing
}

func unionTips(existing, incoming []Tip) []Tip {
	seen := make(map[string]struct{}, len(existing))
	for _, tp := range existing {
		seen[tp.ID] = struct{}{}
	}
	for _, tp := range incoming {
		if _, dup := seen[tp.ID]; dup {
			continue
		}
		seen[tp.ID] = struct{}{}
		existing = append(existing, tp)
	}
	return existing
}
