// Package campaign holds the per-market configuration that drives one
// generated seasonal site: domain, locale, city list, copy bundle and
// countdown behavior. Configs are plain JSON files under data/campaigns/.
package campaign

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// City is one target city within a campaign. Immutable once loaded.
type City struct {
	Slug string `json:"slug"`
	Name string `json:"name"`

	// FeverURL is the explicit external booking URL for the city. When empty
	// it is derived from the campaign's FeverPathTemplate.
	FeverURL string `json:"feverUrl,omitempty"`
}

// Copy is the translation bundle for a campaign. Values may carry the
// placeholder tokens {campaignName}, {city}, {days} and {topic}; substitution
// is a literal replace, never locale-aware (see ExpandTokens).
type Copy struct {
	CountdownMessage    string `json:"countdownMessage"`
	HeroCta             string `json:"heroCta"`
	SeeAllOnFever       string `json:"seeAllOnFever"`
	BreadcrumbHome      string `json:"breadcrumbHome"`
	HeroTitleHome       string `json:"heroTitleHome"`
	HeroTitleCity       string `json:"heroTitleCity"`
	HeroImageAltHome    string `json:"heroImageAltHome"`
	HeroImageAltCity    string `json:"heroImageAltCity"`
	HeroImageAltSubpage string `json:"heroImageAltSubpage"`
}

// Config is one campaign: a localized seasonal site for one market.
type Config struct {
	Slug         string `json:"slug"`
	Domain       string `json:"domain"`
	Locale       string `json:"locale"`
	CampaignName string `json:"campaignName"`
	CountryLabel string `json:"countryLabel"`
	SiteName     string `json:"siteName"`

	// CountdownType selects the hub-page countdown: "mothers-day-uk",
	// "valentines" or "none". Empty means mothers-day-uk for backward compat
	// with the first campaign configs.
	CountdownType string `json:"countdownType"`

	Cities []City `json:"cities"`
	Copy   Copy   `json:"copy"`

	// FeverPathTemplate derives a city's booking URL by substituting {city}
	// with the city slug when the city has no explicit FeverURL.
	FeverPathTemplate string `json:"feverPathTemplate"`

	// FeverCandlelightPathTemplate does the same for the candlelight sub-page.
	FeverCandlelightPathTemplate string `json:"feverCandlelightPathTemplate"`

	// OutputDataFile is the scraped listings JSON, relative to the site root.
	OutputDataFile string `json:"outputDataFile"`
}

// Load reads data/campaigns/<id>.json under root and applies defaults.
// A missing or unreadable config is fatal for the whole run.
func Load(root, id string) (*Config, error) {
	path := filepath.Join(root, "data", "campaigns", id+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("campaign config not found: %s: %w", path, err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("campaign config invalid: %s: %w", path, err)
	}
	cfg.applyDefaults(id)
	return cfg, nil
}

// applyDefaults fills the gaps older configs leave empty. Defaults match the
// original UK Mother's Day site.
func (c *Config) applyDefaults(id string) {
	if c.Slug == "" {
		c.Slug = id
	}
	if c.Domain == "" {
		c.Domain = "https://celebratemothersday.co.uk"
	}
	c.Domain = strings.TrimRight(c.Domain, "/")
	if c.Locale == "" {
		c.Locale = "en-GB"
	}
	if c.CampaignName == "" {
		c.CampaignName = "Mother's Day"
	}
	if c.CountryLabel == "" {
		c.CountryLabel = "UK"
	}
	if c.SiteName == "" {
		c.SiteName = "Celebrate Mother's Day"
	}
	if c.FeverPathTemplate == "" {
		c.FeverPathTemplate = "https://feverup.com/en/{city}/mothers-day"
	}
	if c.FeverCandlelightPathTemplate == "" {
		c.FeverCandlelightPathTemplate = "https://feverup.com/en/{city}/candlelight-{city}"
	}
	if c.OutputDataFile == "" {
		c.OutputDataFile = "data/fever-plans-uk.json"
	}

	cp := &c.Copy
	if cp.CountdownMessage == "" {
		cp.CountdownMessage = "Hurry! {campaignName} is in {days} days."
	}
	if cp.HeroCta == "" {
		cp.HeroCta = "See {campaignName} experiences"
	}
	if cp.SeeAllOnFever == "" {
		cp.SeeAllOnFever = "See all on Fever"
	}
	if cp.BreadcrumbHome == "" {
		cp.BreadcrumbHome = c.CountryLabel
	}
	if cp.HeroTitleHome == "" {
		cp.HeroTitleHome = "Unforgettable {campaignName} 2026: Gifts, Ideas & Experiences"
	}
	if cp.HeroTitleCity == "" {
		cp.HeroTitleCity = "Unforgettable {campaignName} in {city}: Gifts, Ideas & Experiences"
	}
	if cp.HeroImageAltHome == "" {
		cp.HeroImageAltHome = "Mother and daughter laughing having afternoon tea in a garden, Mother's Day experience gift"
	}
	if cp.HeroImageAltCity == "" {
		cp.HeroImageAltCity = "Mother and daughter laughing having afternoon tea in a garden, Mother's Day {city} experience gift"
	}
	if cp.HeroImageAltSubpage == "" {
		cp.HeroImageAltSubpage = "Mother and daughter laughing having afternoon tea in a garden, Mother's Day {topic} in {city} experience gift"
	}
}

// CityFeverURL resolves the booking URL for a city: the explicit one when
// present, else the campaign path template with {city} substituted.
func (c *Config) CityFeverURL(city City) string {
	if city.FeverURL != "" {
		return city.FeverURL
	}
	return strings.ReplaceAll(c.FeverPathTemplate, "{city}", city.Slug)
}

// DataPath resolves the scraped-listings file against the site root.
func (c *Config) DataPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(c.OutputDataFile))
}

// CityCandlelightURL resolves the candlelight booking URL for a city.
func (c *Config) CityCandlelightURL(city City) string {
	return strings.ReplaceAll(c.FeverCandlelightPathTemplate, "{city}", city.Slug)
}

// ExpandTokens applies one literal replace pass per token. No pluralization,
// no locale rules: copy strings are expected to read correctly after a plain
// substitution in every supported locale.
func ExpandTokens(s string, tokens map[string]string) string {
	for k, v := range tokens {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}
