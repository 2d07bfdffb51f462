package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/plans"
)

type subPageMeta struct {
	title       string
	description string
	keywords    string
	h1          string
	intro       string
}

func (a *Assembler) subPageMeta(t PageType, cityName, slug string) (subPageMeta, bool) {
	cn := a.cfg.CampaignName
	kw := strings.Join(strings.Fields(strings.ToLower(cn)), " ")
	switch t {
	case PageIdeas:
		return subPageMeta{
			title:       fmt.Sprintf("%s Gift Ideas %s 2026 | Best Gifts for Mum", cn, cityName),
			description: fmt.Sprintf("%s gift ideas in %s: inspiration and best experiences for Mum. Book experience gifts and plans on Fever.", cn, cityName),
			keywords:    fmt.Sprintf("%s ideas %s, gift ideas %s %s, %s gifts %s", kw, slug, kw, slug, kw, slug),
			h1:          fmt.Sprintf("%s gift ideas in %s", cn, cityName),
			intro:       fmt.Sprintf("Find the best %s gift ideas and inspiration in %s. Experiences, dinners and unique plans. Book %s gifts on Fever.", cn, cityName, cn),
		}, true
	case PageExperiences:
		return subPageMeta{
			title:       fmt.Sprintf("%s Experiences %s 2026 | Afternoon Tea & More", cn, cityName),
			description: fmt.Sprintf("%s experiences in %s: afternoon tea, workshops and experience gifts. Things to do for Mum — book on Fever.", cn, cityName),
			keywords:    fmt.Sprintf("%s experiences %s, experience gifts %s %s, things to do %s %s", kw, slug, kw, slug, kw, slug),
			h1:          fmt.Sprintf("%s experiences in %s", cn, cityName),
			intro:       fmt.Sprintf("Discover %s experience gifts in %s. Afternoon tea, workshops and unforgettable plans. Book %s experiences on Fever.", cn, cityName, cn),
		}, true
	case PageEvents:
		return subPageMeta{
			title:       fmt.Sprintf("%s Events %s 2026 | Things to Do & What's On", cn, cityName),
			description: fmt.Sprintf("%s events in %s: concerts, dinners and things to do. See what's on and book on Fever.", cn, cityName),
			keywords:    fmt.Sprintf("%s events %s, events for %s %s, %s %s events", kw, slug, kw, slug, kw, slug),
			h1:          fmt.Sprintf("%s events in %s", cn, cityName),
			intro:       fmt.Sprintf("Find %s events in %s. Concerts, dinners and special events. Book %s events on Fever.", cn, cityName, cn),
		}, true
	case PageCandlelight:
		return subPageMeta{
			title:       fmt.Sprintf("Candlelight %s %s 2026 | Concerts & Tickets", cn, cityName),
			description: fmt.Sprintf("Candlelight %s in %s: intimate concerts and experience gifts. Book Candlelight tickets on Fever.", cn, cityName),
			keywords:    fmt.Sprintf("%s candlelight %s, candlelight %s %s, candlelight concert %s", kw, slug, kw, slug, slug),
			h1:          fmt.Sprintf("Candlelight %s in %s", cn, cityName),
			intro:       fmt.Sprintf("Candlelight %s experiences in %s. Intimate concerts and unique gifts. Book Candlelight %s on Fever.", cn, cityName, cn),
		}, true
	}
	return subPageMeta{}, false
}

// featuredFor selects the listings that feed a sub-page's "plans to book"
// grid, with the fallback per page type when the primary source is empty.
// Candlelight has no listing fallback: its empty state links out instead.
func featuredFor(t PageType, cp plans.CityPlans, cl plans.Classified) []plans.RawListing {
	switch t {
	case PageCandlelight:
		return cp.CandlelightExperiences
	case PageIdeas:
		if len(cl.Ideas) > 0 {
			return cl.Ideas
		}
		return append(append([]plans.RawListing(nil), cp.GiftCards...), capped(cp.Experiences, maxFeaturedPlans)...)
	case PageExperiences:
		if len(cl.Experiences) > 0 {
			return cl.Experiences
		}
		return capped(cp.Experiences, maxFeaturedPlans)
	case PageEvents:
		if len(cl.Events) > 0 {
			return cl.Events
		}
		return capped(cp.Experiences, maxFeaturedPlans)
	}
	return nil
}

// SubPage renders one of the four themed pages for a city. ErrUnknownPageType
// is a contract violation by the caller; no document is produced.
func (a *Assembler) SubPage(city campaign.City, t PageType, cp plans.CityPlans, cl plans.Classified, now time.Time) (Page, error) {
	meta, ok := a.subPageMeta(t, city.Name, city.Slug)
	if !ok {
		return Page{}, fmt.Errorf("%w: %q", ErrUnknownPageType, t)
	}

	cfg := a.cfg
	name := city.Name
	slug := city.Slug
	imgBase := "../../images/" + slug
	countdownDays, hasCountdown := cfg.CountdownDays(now)

	pageFeverURL := cfg.CityFeverURL(city)
	if t == PageCandlelight {
		pageFeverURL = cfg.CityCandlelightURL(city)
	}

	featured := capped(namedWithURL(featuredFor(t, cp, cl), pageFeverURL), maxFeaturedPlans)

	sectionTitle := cfg.CampaignName + " experiences in " + name
	sectionIntro := "From Fever's " + cfg.CampaignName + " page — book directly below."
	emptyIntro := "No plans in this category right now. Check back soon or see what's on Fever."
	emptyCta := cfg.Copy.SeeAllOnFever
	topic := string(t)
	switch t {
	case PageCandlelight:
		sectionTitle = "Candlelight concerts in " + name
		sectionIntro = "Candlelight concerts in " + name + ". Book on Fever."
		emptyIntro = "No Candlelight plans in " + name + " right now. Check Fever for the latest concerts and experiences."
		emptyCta = "See Candlelight on Fever"
		topic = "Candlelight"
	case PageIdeas:
		sectionTitle = cfg.CampaignName + " ideas in " + name
	case PageEvents:
		sectionTitle = cfg.CampaignName + " events in " + name
	}

	var featuredHTML string
	if len(featured) > 0 {
		var cards []string
		for _, pick := range featured {
			url := pick.URL
			if url == "" {
				url = pageFeverURL
			}
			priceText := pick.PriceText
			if priceText == "" {
				priceText = "Get tickets"
			}
			altPrefix := cfg.CampaignName + " "
			if t == PageCandlelight {
				altPrefix = "Candlelight "
			}
			cards = append(cards, planCard(pick, cardOpts{
				url:       url,
				priceText: priceText,
				imgSrc:    cardImage(pick, imgBase),
				imgAlt:    escapeHTML(pick.Name) + " — " + altPrefix + escapeHTML(name),
				badge:     "PLAN",
			}))
		}
		featuredHTML = `
    <section class="section section--picks" aria-labelledby="featured-heading">
      <div class="container">
        <h2 id="featured-heading" class="section__title">Plans to book</h2>
        <p class="section__intro">` + escapeHTML(sectionIntro) + `</p>
        <div class="picks-grid picks-grid--stagger">
          ` + strings.Join(cards, "\n          ") + `
        </div>
        <p><a href="` + escapeHTML(pageFeverURL) + `" class="cta-button" target="_blank" rel="noopener noreferrer">` + escapeHTML(cfg.Copy.SeeAllOnFever) + ` &rarr;</a></p>
      </div>
    </section>`
	} else {
		featuredHTML = `
    <section class="section section--picks section--empty-state" aria-labelledby="featured-heading">
      <div class="container">
        <h2 id="featured-heading" class="section__title">Plans to book</h2>
        <p class="section__intro">` + escapeHTML(emptyIntro) + `</p>
        <p><a href="` + escapeHTML(pageFeverURL) + `" class="cta-button" target="_blank" rel="noopener noreferrer">` + escapeHTML(emptyCta) + `</a></p>
      </div>
    </section>`
	}

	heroImgAlt := campaign.ExpandTokens(cfg.Copy.HeroImageAltSubpage, map[string]string{
		"campaignName": cfg.CampaignName,
		"city":         name,
		"topic":        topic,
	})
	heroCta := cfg.Copy.SeeAllOnFever + " — " + name
	if t == PageCandlelight {
		heroCta = "See Candlelight in " + name + " on Fever"
	}

	canonical := cfg.Domain + "/" + slug + "/" + string(t) + "/"
	mainContent := `
    <section class="hero hero--subpage hero--subpage-` + slug + `" aria-labelledby="subpage-heading">
      <div class="hero__background">
        <img src="` + imgBase + `.png" alt="` + escapeHTML(heroImgAlt) + `" width="1920" height="1080" loading="eager" fetchpriority="high" class="hero__img">
      </div>
      <div class="hero__overlay hero__overlay--subpage" aria-hidden="true"></div>
      <div class="hero__content hero__content--subpage">
        <div class="container">
          <nav class="breadcrumb breadcrumb--subpage breadcrumb--hero" aria-label="Breadcrumb">
            <a href="/">` + escapeHTML(cfg.Copy.BreadcrumbHome) + `</a><span class="breadcrumb__sep" aria-hidden="true">›</span><a href="/` + slug + `/">` + escapeHTML(name) + `</a><span class="breadcrumb__sep" aria-hidden="true">›</span><span class="breadcrumb__current">` + escapeHTML(meta.h1) + `</span>
          </nav>
          <h1 id="subpage-heading" class="hero__title hero__title--subpage">` + escapeHTML(meta.h1) + `</h1>
          <p class="hero__subtitle hero__subtitle--subpage">` + escapeHTML(meta.intro) + `</p>
          <a href="` + escapeHTML(pageFeverURL) + `" class="cta-button hero__cta" target="_blank" rel="noopener noreferrer">` + escapeHTML(heroCta) + `</a>
        </div>
      </div>
    </section>
    <section class="section section--subpage-actions">
      <div class="container">
        <a href="/` + slug + `/" class="link--back">Back to ` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(name) + `</a>
      </div>
    </section>` + featuredHTML + `
    <section class="section section--seo" aria-labelledby="seo-subpage-heading">
      <div class="container">
        <h2 id="seo-subpage-heading" class="section__title section__title--seo">` + escapeHTML(meta.h1) + ` — book on Fever</h2>
        <div class="seo-content">
          <p>Looking for <strong>` + escapeHTML(meta.h1) + `</strong>? Book <strong>` + escapeHTML(cfg.CampaignName) + ` plans</strong> and <strong>experience gifts</strong> in ` + escapeHTML(name) + ` on Fever. See also <a href="/` + slug + `/">` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(name) + `</a>, <a href="/` + slug + `/ideas/">` + escapeHTML(cfg.CampaignName) + ` ideas ` + escapeHTML(name) + `</a>, <a href="/` + slug + `/experiences/">` + escapeHTML(cfg.CampaignName) + ` experiences ` + escapeHTML(name) + `</a>, <a href="/` + slug + `/events/">` + escapeHTML(cfg.CampaignName) + ` events ` + escapeHTML(name) + `</a> and <a href="/` + slug + `/candlelight/">Candlelight ` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(name) + `</a>. <a href="/">` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(cfg.CountryLabel) + `</a> — pick your city and book.</p>
        </div>
      </div>
    </section>`

	itemListLd := ""
	if len(featured) > 0 {
		itemListLd = itemListLdJSON(featured, sectionTitle)
	}

	stickyText := cfg.Copy.SeeAllOnFever
	if t == PageCandlelight {
		stickyText = "See Candlelight on Fever"
	}

	return Page{
		Path: subPath(city, t),
		HTML: a.layout(layoutOpts{
			pageTitle:       meta.title,
			metaDescription: meta.description,
			keywords:        meta.keywords,
			canonical:       canonical,
			mainContent:     mainContent,
			assetDepth:      "../../",
			heroPreloadURL:  imgBase + ".png",
			city:            city,
			stickyCtaURL:    pageFeverURL,
			stickyCtaText:   stickyText,
			breadcrumbs: []breadcrumb{
				{Name: cfg.Copy.BreadcrumbHome, Item: cfg.Domain + "/"},
				{Name: name, Item: cfg.Domain + "/" + slug + "/"},
				{Name: meta.h1, Item: canonical},
			},
			itemListLd:    itemListLd,
			countdownDays: countdownDays,
			hasCountdown:  hasCountdown,
		}),
	}, nil
}
