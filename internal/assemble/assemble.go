// Package assemble renders the city hub page and the four themed sub-pages
// from a campaign config and the classified listings for one city. Rendering
// is a pure function of its inputs; the caller decides where the documents
// are written.
package assemble

import (
	"errors"
	"path"

	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/plans"
)

// PageType identifies one of the four themed sub-pages. The set is closed:
// asking for anything else is a caller bug, not user input.
type PageType string

const (
	PageIdeas       PageType = "ideas"
	PageExperiences PageType = "experiences"
	PageEvents      PageType = "events"
	PageCandlelight PageType = "candlelight"
)

// SubPageTypes is the generation order for a city's sub-pages.
var SubPageTypes = []PageType{PageIdeas, PageExperiences, PageEvents, PageCandlelight}

// ErrUnknownPageType is returned for a PageType outside the closed set.
// Callers must not write a file when they get it.
var ErrUnknownPageType = errors.New("assemble: unknown page type")

// Page is one generated HTML document plus its destination path relative to
// the site root.
type Page struct {
	Path string
	HTML string
}

// Item caps for the rendered grids.
const (
	maxFeaturedPlans = 6
	maxItemListItems = 12
)

// Fallbacks are the placeholder datasets used when a city has no scraped
// listings. They are injected rather than baked in so tests (and future
// campaigns) can substitute their own.
type Fallbacks struct {
	TopPicks  []plans.RawListing
	GiftCards []plans.RawListing
}

// DefaultFallbacks returns the production placeholder sets: three generic
// top picks linking to the city listing and four generic gift cards.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		TopPicks: []plans.RawListing{
			{Name: "Afternoon Tea & Dining", PriceText: "See on Fever"},
			{Name: "Candlelight Concerts", PriceText: "See on Fever"},
			{Name: "Experience Gifts", PriceText: "See on Fever"},
		},
		GiftCards: []plans.RawListing{
			{Name: "Candlelight Gift Card", PriceText: "From £25.00"},
			{Name: "Ballet of Lights - Gift Card", PriceText: "From £30.00"},
			{Name: "Experience Gifts - Gift Card", PriceText: "From £30.00"},
			{Name: "Themed Gift Cards", PriceText: "From £25.00"},
		},
	}
}

// Assembler renders pages for one campaign. It holds no per-city state.
type Assembler struct {
	cfg       *campaign.Config
	cities    []campaign.City
	fallbacks Fallbacks
}

// New creates an Assembler. cities is the full campaign city list, used for
// footer links on every page.
func New(cfg *campaign.Config, cities []campaign.City, fallbacks Fallbacks) *Assembler {
	return &Assembler{cfg: cfg, cities: cities, fallbacks: fallbacks}
}

func hubPath(city campaign.City) string {
	return path.Join(city.Slug, "index.html")
}

func subPath(city campaign.City, t PageType) string {
	return path.Join(city.Slug, string(t), "index.html")
}

// namedWithURL filters out nameless listings. Every listing that survives
// can resolve an outbound link: its own URL or the page fallback URL.
func namedWithURL(items []plans.RawListing, fallbackURL string) []plans.RawListing {
	out := make([]plans.RawListing, 0, len(items))
	for _, p := range items {
		if p.Name == "" {
			continue
		}
		if p.URL == "" && fallbackURL == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func capped(items []plans.RawListing, n int) []plans.RawListing {
	if len(items) > n {
		return items[:n]
	}
	return items
}
