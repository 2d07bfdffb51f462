package site

import (
	"strings"
	"testing"
	"time"

	"github.com/petalgen/petal/internal/assemble"
	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/plans"
	"github.com/petalgen/petal/internal/testutil"
)

func testConfig(cities ...campaign.City) *campaign.Config {
	return &campaign.Config{
		Slug:                         "mothers-day",
		Domain:                       "https://celebratemothersday.co.uk",
		Locale:                       "en-GB",
		CampaignName:                 "Mother's Day",
		CountryLabel:                 "UK",
		SiteName:                     "Celebrate Mother's Day",
		CountdownType:                campaign.CountdownNone,
		FeverPathTemplate:            "https://feverup.com/en/{city}/mothers-day",
		FeverCandlelightPathTemplate: "https://feverup.com/en/{city}/candlelight-{city}",
		Cities:                       cities,
		Copy: campaign.Copy{
			SeeAllOnFever:  "See all on Fever",
			BreadcrumbHome: "UK",
			HeroTitleCity:  "{campaignName} in {city}",
		},
	}
}

func newTestGenerator(cfg *campaign.Config, data plans.Data) (*Generator, *MemWriter) {
	w := &MemWriter{}
	g := New(cfg, data, assemble.New(cfg, cfg.Cities, assemble.DefaultFallbacks()), w, &testutil.DummyLogger{})
	g.SetClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) })
	return g, w
}

func TestRunWritesAllPages(t *testing.T) {
	cfg := testConfig(
		campaign.City{Slug: "london", Name: "London"},
		campaign.City{Slug: "leeds", Name: "Leeds"},
	)
	g, w := newTestGenerator(cfg, plans.Data{})

	count, err := g.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 10 {
		t.Errorf("count = %d, want 10 (five pages per city)", count)
	}

	wantFiles := []string{
		"london/index.html",
		"london/ideas/index.html",
		"london/experiences/index.html",
		"london/events/index.html",
		"london/candlelight/index.html",
		"leeds/index.html",
		"sitemap.xml",
	}
	for _, f := range wantFiles {
		if _, ok := w.Files[f]; !ok {
			t.Errorf("file %s not written", f)
		}
	}
	if len(w.Files) != 11 {
		t.Errorf("wrote %d files, want 11 (10 pages + sitemap)", len(w.Files))
	}

	if !strings.Contains(string(w.Files["sitemap.xml"]), "<loc>https://celebratemothersday.co.uk/leeds/events/</loc>") {
		t.Error("sitemap missing city sub-page")
	}
}

func TestRunNoCities(t *testing.T) {
	g, w := newTestGenerator(testConfig(), plans.Data{})

	count, err := g.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 0 || len(w.Files) != 0 {
		t.Errorf("empty campaign wrote %d pages, %d files", count, len(w.Files))
	}
}

func TestCityPagesUsesScrapedData(t *testing.T) {
	city := campaign.City{Slug: "london", Name: "London"}
	cfg := testConfig(city)
	data := plans.Data{
		"london": plans.CityPlans{
			Experiences: []plans.RawListing{
				{Name: "Afternoon Tea", URL: "https://feverup.com/m/1", PriceText: "From £20"},
			},
		},
	}
	g, _ := newTestGenerator(cfg, data)

	pages, err := g.CityPages(city, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("CityPages: %v", err)
	}
	if len(pages) != 5 {
		t.Fatalf("got %d pages, want 5", len(pages))
	}
	if pages[0].Path != "london/index.html" {
		t.Errorf("first page = %q, want hub", pages[0].Path)
	}
	if !strings.Contains(pages[0].HTML, "Afternoon Tea") {
		t.Error("hub page missing scraped listing")
	}
}

type failingWriter struct{}

func (failingWriter) WriteFile(string, []byte) error {
	return errWriteFailed
}

var errWriteFailed = &writeError{}

type writeError struct{}

func (*writeError) Error() string { return "disk full" }

func TestRunAbortsOnWriteError(t *testing.T) {
	cfg := testConfig(campaign.City{Slug: "london", Name: "London"})
	g := New(cfg, plans.Data{}, assemble.New(cfg, cfg.Cities, assemble.DefaultFallbacks()), failingWriter{}, &testutil.DummyLogger{})

	count, err := g.Run()
	if err == nil {
		t.Fatal("Run should fail when the writer fails")
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
