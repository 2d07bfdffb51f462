package plans

import "regexp"

// Classification thresholds. These are observed site behavior, not tuning
// knobs: changing either changes which listings land on the events and
// ideas pages.
const (
	// ShortRangeDays is the inclusive approximate-span boundary under which
	// a date-ranged listing also counts as an event.
	ShortRangeDays = 45

	// MaxIdeasExtra caps the non-gift-like experiences appended to the ideas
	// bucket so the ideas page is never sparse.
	MaxIdeasExtra = 8
)

var giftLikeRe = regexp.MustCompile(`(?i)gift|package|experience\s*gift`)

// Classified are the derived buckets for one city. Recomputed on every run,
// never persisted. A listing may appear in more than one bucket: a
// short-dated run is both an event and an experience.
type Classified struct {
	Events      []RawListing
	Experiences []RawListing
	Ideas       []RawListing
}

// Classify partitions a city's raw listings.
//
// Events vs experiences, from the experiences input in original order:
//   - single date ("14 Mar From")          → event only
//   - closed range, span <= ShortRangeDays → event and experience
//   - closed range, span >  ShortRangeDays → experience only
//   - open range or no date at all         → experience only
//
// Absence of a date is not an event signal: the default bucket is
// experiences, so every named listing lands in at least one bucket.
//
// Ideas: all gift cards, then gift-like experiences (deduplicated by the
// (url, name) pair), then up to MaxIdeasExtra further experiences not yet
// present (by url-or-name identity).
//
// The candlelight input is not classified; it feeds its own page directly.
func Classify(cp CityPlans) Classified {
	out := Classified{
		Ideas: append([]RawListing(nil), cp.GiftCards...),
	}

	for _, p := range cp.Experiences {
		if p.Name == "" {
			continue
		}
		info := ParseDateText(p.Name + " " + p.PriceText)

		isEvent, isExperience := false, false
		switch info.Kind {
		case DateSingle:
			isEvent = true
		case DateRange:
			isExperience = true
			if info.SpanDays <= ShortRangeDays {
				isEvent = true
			}
		default:
			isExperience = true
		}

		if isEvent {
			out.Events = append(out.Events, p)
		}
		if isExperience {
			out.Experiences = append(out.Experiences, p)
		}
	}

	for _, p := range cp.Experiences {
		if p.Name == "" || !giftLikeRe.MatchString(p.Name) {
			continue
		}
		if !containsPair(out.Ideas, p) {
			out.Ideas = append(out.Ideas, p)
		}
	}

	seen := make(map[string]struct{}, len(out.Ideas))
	for _, i := range out.Ideas {
		seen[identity(i)] = struct{}{}
	}
	added := 0
	for _, p := range cp.Experiences {
		if added >= MaxIdeasExtra {
			break
		}
		if p.Name == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		if p.URL != "" {
			if _, ok := seen[p.URL]; ok {
				continue
			}
		}
		out.Ideas = append(out.Ideas, p)
		seen[identity(p)] = struct{}{}
		added++
	}

	return out
}

// containsPair reports whether the bucket already holds a listing with the
// same (url, name) pair. Same name under a different URL is a distinct
// listing.
func containsPair(bucket []RawListing, p RawListing) bool {
	for _, i := range bucket {
		if i.URL == p.URL && i.Name == p.Name {
			return true
		}
	}
	return false
}

func identity(p RawListing) string {
	if p.URL != "" {
		return p.URL
	}
	return p.Name
}
