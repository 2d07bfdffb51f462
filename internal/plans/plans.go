// Package plans models the scraped Fever listings for a campaign and
// classifies them into the events / experiences / ideas buckets that feed
// the generated city pages.
package plans

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/petalgen/petal/internal/logging"
)

// RawListing is one scraped item, exactly as the scraper wrote it. The
// generator only reads and re-buckets listings, it never mutates them.
type RawListing struct {
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
	PriceText string `json:"priceText,omitempty"`
	Image     string `json:"image,omitempty"`
}

// CityPlans are the raw listings for one city, split the way the scraper
// splits them. The legacy data format was a single flat array; it decodes
// as Experiences with the other buckets empty.
type CityPlans struct {
	Experiences            []RawListing `json:"experiences"`
	GiftCards              []RawListing `json:"giftCards"`
	CandlelightExperiences []RawListing `json:"candlelightExperiences"`
}

// UnmarshalJSON accepts both the current object shape and the legacy flat
// array shape.
func (c *CityPlans) UnmarshalJSON(data []byte) error {
	var flat []RawListing
	if err := json.Unmarshal(data, &flat); err == nil {
		*c = CityPlans{Experiences: flat}
		return nil
	}

	type cityPlansAlias CityPlans
	var obj cityPlansAlias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = CityPlans(obj)
	return nil
}

// Data maps city slug to that city's raw listings.
type Data map[string]CityPlans

// LoadData reads the scraped listings file. A missing, unreadable or
// structurally invalid file is never fatal: the generator falls back to
// empty buckets (and fallback content) for every city.
func LoadData(path string, logger logging.Logger) Data {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("plans file missing", logging.Field{Key: "path", Value: path}, logging.Field{Key: "error", Value: err.Error()})
		return Data{}
	}

	data := Data{}
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn("plans file invalid", logging.Field{Key: "path", Value: path}, logging.Field{Key: "error", Value: err.Error()})
		return Data{}
	}
	return data
}

// ForCity returns the city's plans, or empty buckets for unknown slugs.
func (d Data) ForCity(slug string) CityPlans {
	if d == nil {
		return CityPlans{}
	}
	return d[slug]
}

// Stats is a small summary used for run logging.
func (d Data) Stats() string {
	cities, listings := 0, 0
	for _, cp := range d {
		cities++
		listings += len(cp.Experiences) + len(cp.GiftCards) + len(cp.CandlelightExperiences)
	}
	return fmt.Sprintf("%d cities, %d listings", cities, listings)
}
