package assemble

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/plans"
)

func testConfig() *campaign.Config {
	return &campaign.Config{
		Slug:                         "mothers-day",
		Domain:                       "https://celebratemothersday.co.uk",
		Locale:                       "en-GB",
		CampaignName:                 "Mother's Day",
		CountryLabel:                 "UK",
		SiteName:                     "Celebrate Mother's Day",
		CountdownType:                campaign.CountdownMothersDayUK,
		FeverPathTemplate:            "https://feverup.com/en/{city}/mothers-day",
		FeverCandlelightPathTemplate: "https://feverup.com/en/{city}/candlelight-{city}",
		Copy: campaign.Copy{
			CountdownMessage: "Hurry! {campaignName} is in {days} days.",
			HeroCta:          "See {campaignName} experiences",
			SeeAllOnFever:    "See all on Fever",
			BreadcrumbHome:   "UK",
			HeroTitleCity:    "{campaignName} in {city} — Gifts & Ideas",
			HeroImageAltCity: "Mother and daughter, {campaignName} in {city}",
			HeroImageAltSubpage: "Mother and daughter, {campaignName} {topic} in {city}",
		},
	}
}

var (
	testCity = campaign.City{Slug: "london", Name: "London"}
	testNow  = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
)

func testAssembler() *Assembler {
	cfg := testConfig()
	return New(cfg, []campaign.City{testCity, {Slug: "leeds", Name: "Leeds"}}, DefaultFallbacks())
}

func TestHubPageFallback(t *testing.T) {
	a := testAssembler()
	page := a.HubPage(testCity, plans.CityPlans{}, testNow)

	if page.Path != "london/index.html" {
		t.Errorf("Path = %q", page.Path)
	}
	for i := 1; i <= 3; i++ {
		badge := fmt.Sprintf("#%d TOP PICK", i)
		if !strings.Contains(page.HTML, badge) {
			t.Errorf("fallback hub missing badge %q", badge)
		}
	}
	if strings.Contains(page.HTML, "#4 TOP PICK") {
		t.Error("fallback list should have exactly three picks")
	}
	if !strings.Contains(page.HTML, "Top picks for Mother's Day") {
		t.Error("fallback hub missing fallback section title")
	}
	// Fallback picks link out to the city's Fever URL.
	if !strings.Contains(page.HTML, "https://feverup.com/en/london/mothers-day") {
		t.Error("fallback hub missing derived Fever URL")
	}
	// Fallback gift cards are rendered.
	if !strings.Contains(page.HTML, "Candlelight Gift Card") {
		t.Error("fallback hub missing fallback gift cards")
	}
	// No scraped listings means no ItemList structured data.
	if strings.Contains(page.HTML, `"@type":"ItemList"`) {
		t.Error("fallback hub should not emit ItemList JSON-LD")
	}
}

func TestHubPageScraped(t *testing.T) {
	cp := plans.CityPlans{}
	for i := 0; i < 10; i++ {
		cp.Experiences = append(cp.Experiences, plans.RawListing{
			Name:      fmt.Sprintf("Experience %d", i),
			URL:       fmt.Sprintf("https://feverup.com/m/%d", i),
			PriceText: "From £20.00 4.8",
		})
	}

	a := testAssembler()
	page := a.HubPage(testCity, cp, testNow)

	if !strings.Contains(page.HTML, "#1 PLAN") {
		t.Error("scraped hub should use PLAN badges")
	}
	if strings.Contains(page.HTML, "TOP PICK") {
		t.Error("scraped hub should not fall back to TOP PICK badges")
	}
	// Grid capped at six cards.
	if strings.Contains(page.HTML, "#7 PLAN") {
		t.Error("picks grid should cap at six")
	}
	// All ten named listings still feed the ItemList (cap is twelve).
	if !strings.Contains(page.HTML, `"@type":"ItemList"`) {
		t.Error("scraped hub missing ItemList JSON-LD")
	}
	if !strings.Contains(page.HTML, `"numberOfItems":10`) {
		t.Error("ItemList should include all ten listings")
	}
	// Rating split out of the price text.
	if !strings.Contains(page.HTML, "4.8") {
		t.Error("rating missing from plan card")
	}
}

func TestHubPageMeta(t *testing.T) {
	a := testAssembler()
	page := a.HubPage(testCity, plans.CityPlans{}, testNow)

	wantTitle := "Mother's Day London 2026 | Things to Do, Gifts &amp; Experiences for Mum"
	if !strings.Contains(page.HTML, wantTitle) {
		t.Errorf("hub title missing, want %q", wantTitle)
	}
	if !strings.Contains(page.HTML, `rel="canonical" href="https://celebratemothersday.co.uk/london/"`) {
		t.Error("hub canonical missing")
	}
	// Countdown text is expanded server-side: 2026-03-01 → 21 days.
	if !strings.Contains(page.HTML, "21 days") {
		t.Error("countdown text not expanded")
	}
	// Hub links each sub-page.
	for _, sub := range []string{"ideas", "experiences", "events", "candlelight"} {
		if !strings.Contains(page.HTML, `href="/london/`+sub+`/"`) {
			t.Errorf("hub missing link to %s", sub)
		}
	}
}

func TestSubPageCandlelightEmpty(t *testing.T) {
	a := testAssembler()
	page, err := a.SubPage(testCity, PageCandlelight, plans.CityPlans{}, plans.Classified{}, testNow)
	if err != nil {
		t.Fatalf("SubPage: %v", err)
	}

	if page.Path != "london/candlelight/index.html" {
		t.Errorf("Path = %q", page.Path)
	}
	if !strings.Contains(page.HTML, "section--empty-state") {
		t.Error("empty candlelight page missing empty state")
	}
	if !strings.Contains(page.HTML, "See Candlelight on Fever") {
		t.Error("empty candlelight page missing candlelight CTA")
	}
	if !strings.Contains(page.HTML, "https://feverup.com/en/london/candlelight-london") {
		t.Error("candlelight page should link the candlelight Fever URL")
	}
	if strings.Contains(page.HTML, `"@type":"ItemList"`) {
		t.Error("empty page should not emit ItemList JSON-LD")
	}
}

func TestSubPageFeaturedFallbacks(t *testing.T) {
	cp := plans.CityPlans{
		Experiences: []plans.RawListing{
			{Name: "Tea", URL: "https://feverup.com/m/1"},
		},
		GiftCards: []plans.RawListing{
			{Name: "Card", URL: "https://feverup.com/m/2"},
		},
	}

	tests := []struct {
		t    PageType
		cl   plans.Classified
		want string
	}{
		{PageEvents, plans.Classified{}, "Tea"}, // no classified events → raw experiences
		{PageEvents, plans.Classified{Events: []plans.RawListing{{Name: "Concert", URL: "u"}}}, "Concert"},
		{PageIdeas, plans.Classified{}, "Card"}, // no ideas → gift cards first
	}
	for _, tt := range tests {
		got := featuredFor(tt.t, cp, tt.cl)
		if len(got) == 0 || got[0].Name != tt.want {
			t.Errorf("featuredFor(%s) first = %+v, want name %q", tt.t, got, tt.want)
		}
	}
}

func TestSubPageUnknownType(t *testing.T) {
	a := testAssembler()
	_, err := a.SubPage(testCity, PageType("bogus"), plans.CityPlans{}, plans.Classified{}, testNow)
	if !errors.Is(err, ErrUnknownPageType) {
		t.Fatalf("err = %v, want ErrUnknownPageType", err)
	}
}

func TestSubPageTitles(t *testing.T) {
	a := testAssembler()
	cp := plans.CityPlans{}
	cl := plans.Classified{}

	tests := []struct {
		t    PageType
		want string
	}{
		{PageIdeas, "Gift Ideas London 2026"},
		{PageExperiences, "Experiences London 2026"},
		{PageEvents, "Events London 2026"},
		{PageCandlelight, "Candlelight Mother's Day London 2026"},
	}
	for _, tt := range tests {
		page, err := a.SubPage(testCity, tt.t, cp, cl, testNow)
		if err != nil {
			t.Fatalf("SubPage(%s): %v", tt.t, err)
		}
		if !strings.Contains(page.HTML, tt.want) {
			t.Errorf("SubPage(%s) title missing %q", tt.t, tt.want)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	got := escapeHTML(`<Tea> & "Cake"`)
	want := "&lt;Tea&gt; &amp; &quot;Cake&quot;"
	if got != want {
		t.Errorf("escapeHTML = %q, want %q", got, want)
	}
	if escapeHTML("") != "" {
		t.Error("escapeHTML(\"\") should be empty")
	}
}

func TestItemListAbsoluteURLsOnly(t *testing.T) {
	items := []plans.RawListing{
		{Name: "Abs", URL: "https://feverup.com/m/1"},
		{Name: "Rel", URL: "/m/2"},
		{Name: "None"},
	}
	ld := itemListLdJSON(items, "list")
	if !strings.Contains(ld, "https://feverup.com/m/1") {
		t.Error("absolute URL missing from ItemList")
	}
	if strings.Contains(ld, "/m/2") {
		t.Error("relative URL should be excluded from ItemList")
	}
}
