package assemble

import (
	"fmt"
	"strings"

	"github.com/petalgen/petal/internal/plans"
)

type cardOpts struct {
	url       string
	priceText string
	imgSrc    string
	imgAlt    string
	badge     string
	ctaText   string
}

// planCard renders one bookable listing card. The rating, when the price
// label carries one, is split out and rendered as a star badge.
func planCard(p plans.RawListing, o cardOpts) string {
	price, rating := plans.SplitPriceRating(o.priceText)
	ratingHTML := ""
	if rating != "" {
		ratingHTML = fmt.Sprintf(`<span class="pick-card__rating" aria-label="Rating %s out of 5">★ %s</span>`, rating, rating)
	}
	ratingLine := ""
	if ratingHTML != "" {
		ratingLine = "\n          " + ratingHTML
	}
	cta := o.ctaText
	if cta == "" {
		cta = "Get Tickets →"
	}
	return fmt.Sprintf(`
    <article class="pick-card">
      <a href="%s" class="pick-card__link" target="_blank" rel="noopener noreferrer" aria-label="%s — Get tickets on Fever">
        <span class="pick-card__img-wrap">
          <img src="%s" alt="%s" width="400" height="300" loading="lazy" class="pick-card__img">
        </span>
        <div class="pick-card__body">
          <span class="pick-card__badge">%s</span>
          <h3 class="pick-card__title">%s</h3>
          <span class="pick-card__price">%s</span>%s
          <span class="pick-card__cta cta-button cta-button--card">%s</span>
        </div>
      </a>
    </article>`,
		escapeHTML(o.url), escapeHTML(p.Name), escapeHTML(o.imgSrc), o.imgAlt,
		escapeHTML(o.badge), escapeHTML(p.Name), escapeHTML(price), ratingLine, escapeHTML(cta))
}

// cardImage prefers the scraped absolute image URL, else the city hero image.
func cardImage(p plans.RawListing, imgBase string) string {
	if strings.HasPrefix(p.Image, "http") {
		return p.Image
	}
	return imgBase + ".png"
}
