package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/plans"
)

// HubPage renders a city's main landing page. The top-picks grid uses the
// raw experiences bucket (not the classified one), capped at six; a city
// with no scraped experiences gets the injected placeholder picks instead.
func (a *Assembler) HubPage(city campaign.City, cp plans.CityPlans, now time.Time) Page {
	cfg := a.cfg
	name := city.Name
	slug := city.Slug
	feverURL := cfg.CityFeverURL(city)
	imgBase := "../images/" + slug
	cityURL := cfg.Domain + "/" + slug + "/"
	countdownDays, hasCountdown := cfg.CountdownDays(now)

	scraped := namedWithURL(cp.Experiences, feverURL)
	picks := capped(scraped, maxFeaturedPlans)
	badgeWord := "PLAN"
	sectionTitle := cfg.CampaignName + " plans in " + name
	if len(scraped) == 0 {
		picks = make([]plans.RawListing, 0, len(a.fallbacks.TopPicks))
		for _, p := range a.fallbacks.TopPicks {
			if p.URL == "" {
				p.URL = feverURL
			}
			picks = append(picks, p)
		}
		badgeWord = "TOP PICK"
		sectionTitle = "Top picks for " + cfg.CampaignName
	}

	var picksHTML []string
	for i, pick := range picks {
		url := pick.URL
		if url == "" {
			url = feverURL
		}
		priceText := pick.PriceText
		if priceText == "" {
			priceText = "Get tickets"
		}
		imgAlt := escapeHTML(pick.Name) + " — " + cfg.CampaignName + " experience in " + escapeHTML(name)
		picksHTML = append(picksHTML, planCard(pick, cardOpts{
			url:       url,
			priceText: priceText,
			imgSrc:    cardImage(pick, imgBase),
			imgAlt:    imgAlt,
			badge:     fmt.Sprintf("#%d %s", i+1, badgeWord),
		}))
	}

	giftCards := cp.GiftCards
	if len(giftCards) == 0 {
		giftCards = a.fallbacks.GiftCards
	}
	var giftCardsHTML []string
	for _, card := range giftCards {
		cardURL := card.URL
		if cardURL == "" {
			cardURL = feverURL
		}
		giftCardsHTML = append(giftCardsHTML, fmt.Sprintf(`
          <article class="gift-card" role="listitem">
            <a href="%s" class="gift-card__link" target="_blank" rel="noopener noreferrer" aria-label="%s — %s on Fever">
              <span class="gift-card__img-wrap">
                <img src="%s" alt="%s — %s gift card %s" width="280" height="180" loading="lazy" class="gift-card__img">
              </span>
              <span class="gift-card__title">%s</span>
              <span class="gift-card__price">%s</span>
            </a>
          </article>`,
			escapeHTML(cardURL), escapeHTML(card.Name), escapeHTML(card.PriceText),
			escapeHTML(cardImage(card, imgBase)), escapeHTML(card.Name), escapeHTML(cfg.CampaignName), escapeHTML(name),
			escapeHTML(card.Name), escapeHTML(card.PriceText)))
	}

	tokens := map[string]string{"campaignName": cfg.CampaignName, "city": name}
	heroCtaText := campaign.ExpandTokens(cfg.Copy.HeroCta, tokens)
	heroTitle := campaign.ExpandTokens(cfg.Copy.HeroTitleCity, tokens)
	heroImgAlt := campaign.ExpandTokens(cfg.Copy.HeroImageAltCity, tokens)

	mainContent := `
    <div class="container container--breadcrumb">
      <nav class="breadcrumb breadcrumb--hero" aria-label="Breadcrumb">
        <a href="/">` + escapeHTML(cfg.Copy.BreadcrumbHome) + `</a> <span class="breadcrumb__sep" aria-hidden="true">›</span> <span class="breadcrumb__current">` + escapeHTML(name) + `</span>
      </nav>
    </div>
    <section class="hero hero--city hero--` + slug + `" aria-labelledby="hero-heading">
      <div class="hero__background">
        <img src="` + imgBase + `.png" alt="` + escapeHTML(heroImgAlt) + `" width="1920" height="1080" loading="eager" fetchpriority="high" class="hero__img">
      </div>
      <div class="hero__overlay" aria-hidden="true"></div>
      <div class="hero__content">
        <span class="hero__badge" aria-hidden="true">` + escapeHTML(cfg.CampaignName) + ` 2026</span>
        <h1 id="hero-heading" class="hero__title">` + escapeHTML(heroTitle) + `</h1>
        <p class="hero__subtitle">Discover the best ` + escapeHTML(cfg.CampaignName) + ` ideas, gifts and experiences in ` + escapeHTML(name) + `</p>
        <a href="` + feverURL + `" class="hero__cta cta-button" target="_blank" rel="noopener noreferrer" aria-label="` + escapeHTML(heroCtaText) + `">` + escapeHTML(heroCtaText) + `</a>
      </div>
    </section>

    <section class="section section--picks" aria-labelledby="picks-heading">
      <div class="container">
        <h2 id="picks-heading" class="section__title">` + escapeHTML(sectionTitle) + `</h2>
        <p class="section__intro">Most loved experiences for ` + escapeHTML(cfg.CampaignName) + ` in ` + escapeHTML(name) + `. Book directly on Fever.</p>
        <div class="picks-grid picks-grid--stagger">
          ` + strings.Join(picksHTML, "\n") + `
        </div>
      </div>
    </section>

    <section class="section section--gift-cards" aria-labelledby="gift-cards-heading">
      <div class="container">
        <div class="gift-cards-header">
          <h2 id="gift-cards-heading" class="section__title section__title--inline">Gift Cards</h2>
          <a href="` + escapeHTML(feverURL) + `" class="gift-cards-see-all" target="_blank" rel="noopener noreferrer">See all</a>
        </div>
        <div class="gift-cards-scroll" role="list">` + strings.Join(giftCardsHTML, "") + `
        </div>
      </div>
    </section>

    <section class="section section--why" aria-labelledby="why-heading">
      <div class="container">
        <h2 id="why-heading" class="section__title">Why ` + escapeHTML(name) + ` is perfect for ` + escapeHTML(cfg.CampaignName) + `</h2>
        <div class="why-grid">
          <div class="why-block">
            <h3 class="why-block__title">Iconic experiences</h3>
            <p class="why-block__text">From afternoon tea to Candlelight concerts, ` + escapeHTML(name) + ` offers memorable ` + escapeHTML(cfg.CampaignName) + ` experiences. Find gift ideas and things to do.</p>
          </div>
          <div class="why-block">
            <h3 class="why-block__title">Afternoon tea &amp; dining</h3>
            <p class="why-block__text">Treat someone special to afternoon tea or a special meal. Restaurants and experiences for ` + escapeHTML(cfg.CampaignName) + ` in ` + escapeHTML(name) + ` — book ahead on Fever.</p>
          </div>
          <div class="why-block">
            <h3 class="why-block__title">Candlelight &amp; events</h3>
            <p class="why-block__text">Candlelight concerts and ` + escapeHTML(cfg.CampaignName) + ` events in ` + escapeHTML(name) + `. Experience gifts to remember.</p>
          </div>
        </div>
      </div>
    </section>

    <section class="section section--ideas" aria-labelledby="ideas-heading">
      <div class="container">
        <h2 id="ideas-heading" class="section__title">` + escapeHTML(cfg.CampaignName) + ` ideas in ` + escapeHTML(name) + `</h2>
        <p class="section__intro">Explore the best options to celebrate ` + escapeHTML(cfg.CampaignName) + `</p>
        <div class="ideas-grid ideas-grid--stagger">
          <a href="/` + slug + `/ideas/" class="idea-card">
            <span class="idea-card__title">` + escapeHTML(cfg.CampaignName) + ` Gifts</span>
            <span class="idea-card__desc">Find the best ` + escapeHTML(cfg.CampaignName) + ` gifts in ` + escapeHTML(name) + `</span>
          </a>
          <a href="/` + slug + `/experiences/" class="idea-card">
            <span class="idea-card__title">` + escapeHTML(cfg.CampaignName) + ` Experiences</span>
            <span class="idea-card__desc">Experiences and gift ideas in ` + escapeHTML(name) + `</span>
          </a>
          <a href="/` + slug + `/events/" class="idea-card">
            <span class="idea-card__title">` + escapeHTML(cfg.CampaignName) + ` Events</span>
            <span class="idea-card__desc">Events for ` + escapeHTML(cfg.CampaignName) + ` in ` + escapeHTML(name) + `</span>
          </a>
          <a href="/` + slug + `/candlelight/" class="idea-card">
            <span class="idea-card__title">Candlelight ` + escapeHTML(cfg.CampaignName) + `</span>
            <span class="idea-card__desc">Candlelight concerts for ` + escapeHTML(cfg.CampaignName) + ` in ` + escapeHTML(name) + `</span>
          </a>
        </div>
      </div>
    </section>

    <section class="section section--cta-fever">
      <div class="container">
        <p class="section__intro">See all ` + escapeHTML(cfg.CampaignName) + ` experiences, gift ideas and events in ` + escapeHTML(name) + ` on Fever.</p>
        <p><a href="` + feverURL + `" class="cta-button" target="_blank" rel="noopener noreferrer" aria-label="` + escapeHTML(cfg.Copy.SeeAllOnFever) + `">` + escapeHTML(cfg.Copy.SeeAllOnFever) + ` &rarr;</a></p>
      </div>
    </section>

    <section class="section section--seo" aria-labelledby="seo-city-heading">
      <div class="container">
        <h2 id="seo-city-heading" class="section__title section__title--seo">` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(name) + `: things to do, gifts and experiences</h2>
        <div class="seo-content">
          <p>Looking for <strong>` + escapeHTML(cfg.CampaignName) + ` ideas in ` + escapeHTML(name) + `</strong> or <strong>things to do for ` + escapeHTML(cfg.CampaignName) + `</strong>? We've got <strong>` + escapeHTML(cfg.CampaignName) + ` plans</strong>, <strong>experience gifts</strong> and <strong>` + escapeHTML(cfg.CampaignName) + ` events</strong> in ` + escapeHTML(name) + ` — from afternoon tea to <a href="/` + slug + `/candlelight/">Candlelight ` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(name) + `</a>, <a href="/` + slug + `/experiences/">` + escapeHTML(cfg.CampaignName) + ` experiences in ` + escapeHTML(name) + `</a> and <a href="/` + slug + `/ideas/">` + escapeHTML(cfg.CampaignName) + ` gift ideas ` + escapeHTML(name) + `</a>. <a href="/` + slug + `/events/">` + escapeHTML(cfg.CampaignName) + ` events ` + escapeHTML(name) + `</a> are bookable on Fever. <a href="/">` + escapeHTML(cfg.CampaignName) + ` ` + escapeHTML(cfg.CountryLabel) + `</a> — pick your city and book.</p>
        </div>
      </div>
    </section>`

	itemListLd := ""
	if len(scraped) > 0 {
		itemListLd = itemListLdJSON(capped(scraped, maxItemListItems), cfg.CampaignName+" plans in "+name)
	}

	kw := strings.Join(strings.Fields(strings.ToLower(cfg.CampaignName)), " ")
	return Page{
		Path: hubPath(city),
		HTML: a.layout(layoutOpts{
			pageTitle:       fmt.Sprintf("%s %s 2026 | Things to Do, Gifts & Experiences for Mum", cfg.CampaignName, name),
			metaDescription: fmt.Sprintf("%s %s: gift ideas, things to do and experiences for Mum. Afternoon tea, Candlelight concerts & events. Book on Fever.", cfg.CampaignName, name),
			keywords:        fmt.Sprintf("%s %s, %s %s, things to do %s, plans %s, gifts %s", kw, slug, kw, name, slug, slug, slug),
			canonical:       cityURL,
			mainContent:     mainContent,
			assetDepth:      "../",
			heroPreloadURL:  imgBase + ".png",
			city:            city,
			stickyCtaURL:    feverURL,
			stickyCtaText:   cfg.Copy.SeeAllOnFever,
			breadcrumbs: []breadcrumb{
				{Name: cfg.Copy.BreadcrumbHome, Item: cfg.Domain + "/"},
				{Name: name, Item: cityURL},
			},
			itemListLd:    itemListLd,
			countdownDays: countdownDays,
			hasCountdown:  hasCountdown,
		}),
	}
}
