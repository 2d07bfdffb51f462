package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/petalgen/petal/internal/campaign"
)

// logoPath is served from the site root images, same asset as the home page.
const logoPath = "images/logo.svg"

type layoutOpts struct {
	pageTitle       string
	metaDescription string
	keywords        string
	canonical       string
	mainContent     string
	assetDepth      string
	city            campaign.City
	stickyCtaURL    string
	stickyCtaText   string
	breadcrumbs     []breadcrumb
	itemListLd      string
	heroPreloadURL  string
	countdownDays   int
	hasCountdown    bool
}

// countdownBar renders the availability notice with its initial text already
// expanded server-side; the browser script only has to keep the number live.
func (a *Assembler) countdownBar(days int) string {
	msg := campaign.ExpandTokens(a.cfg.Copy.CountdownMessage, map[string]string{
		"campaignName": a.cfg.CampaignName,
		"days":         strconv.Itoa(days),
	})
	return `<div class="top-bar" role="complementary" aria-label="Limited availability notice">
    <p class="top-bar__text"><span id="countdown-live" aria-live="polite">` + escapeHTML(msg) + `</span></p>
  </div>
  `
}

func (a *Assembler) footerCityLinks() string {
	links := make([]string, 0, len(a.cities))
	for _, c := range a.cities {
		links = append(links, fmt.Sprintf(`<a href="/%s/" title="%s %s — ideas, gifts and things to do">%s %s</a>`,
			c.Slug, escapeHTML(a.cfg.CampaignName), escapeHTML(c.Name), escapeHTML(a.cfg.CampaignName), escapeHTML(c.Name)))
	}
	return strings.Join(links, "\n            ")
}

func (a *Assembler) layout(o layoutOpts) string {
	cfg := a.cfg
	name := o.city.Name
	slug := o.city.Slug

	countdownBarHTML := ""
	if o.hasCountdown {
		countdownBarHTML = a.countdownBar(o.countdownDays)
	}

	stickyCtaHTML := ""
	headerCtaHTML := ""
	if o.stickyCtaURL != "" && o.stickyCtaText != "" {
		stickyCtaHTML = fmt.Sprintf(`
  <div class="sticky-cta sticky-cta--city" aria-label="Book on Fever">
    <a href="%s" class="sticky-cta__button cta-button" target="_blank" rel="noopener noreferrer" aria-label="%s">%s</a>
  </div>`, escapeHTML(o.stickyCtaURL), escapeHTML(o.stickyCtaText), escapeHTML(o.stickyCtaText))
		headerCtaHTML = fmt.Sprintf(`<a href="%s" class="site-header__cta cta-button" target="_blank" rel="noopener noreferrer" aria-label="%s">%s</a>`,
			escapeHTML(o.stickyCtaURL), escapeHTML(o.stickyCtaText), escapeHTML(o.stickyCtaText))
	}

	heroPreload := ""
	if o.heroPreloadURL != "" {
		heroPreload = fmt.Sprintf(`<link rel="preload" href="%s" as="image">`, escapeHTML(o.heroPreloadURL))
	}

	htmlLang := strings.ReplaceAll(cfg.Locale, "_", "-")
	ogLocale := strings.ReplaceAll(cfg.Locale, "-", "_")
	siteNameFull := cfg.SiteName
	if cfg.CountryLabel != "" {
		siteNameFull += " " + cfg.CountryLabel
	}

	localBusinessLd := fmt.Sprintf(
		`{"@context":"https://schema.org","@type":"LocalBusiness","name":"%s %s | %s","url":"%s","description":"%s","image":"%s/images/%s.png","address":{"@type":"PostalAddress","addressLocality":"%s","addressCountry":"%s"},"areaServed":{"@type":"City","name":"%s"}}`,
		escapeJSON(cfg.CampaignName), escapeJSON(name), escapeJSON(siteNameFull), escapeJSON(o.canonical),
		escapeJSON(o.metaDescription), cfg.Domain, slug, escapeJSON(name), escapeJSON(cfg.CountryLabel), escapeJSON(name))

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="` + escapeHTML(htmlLang) + `">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>` + escapeHTML(o.pageTitle) + `</title>
  <meta name="description" content="` + escapeHTML(o.metaDescription) + `">
  <meta name="keywords" content="` + escapeHTML(o.keywords) + `">
  <link rel="canonical" href="` + o.canonical + `">
  <link rel="dns-prefetch" href="https://feverup.com">
  <link rel="dns-prefetch" href="https://applications-media.feverup.com">
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=DM+Sans:ital,opsz,wght@0,9..40,400;0,9..40,500;0,9..40,600;0,9..40,700;1,9..40,400&family=Lato:wght@400;600;700&display=optional" rel="stylesheet">
  <link rel="preload" href="` + o.assetDepth + `css/bundle.min.css" as="style">
  ` + heroPreload + `
  <link rel="stylesheet" href="` + o.assetDepth + `css/bundle.min.css">
  <link rel="icon" type="image/svg+xml" href="` + o.assetDepth + logoPath + `">
  <meta property="og:type" content="website">
  <meta property="og:title" content="` + escapeHTML(o.pageTitle) + `">
  <meta property="og:description" content="` + escapeHTML(o.metaDescription) + `">
  <meta property="og:image" content="` + cfg.Domain + `/images/` + slug + `.png">
  <meta property="og:url" content="` + o.canonical + `">
  <meta property="og:locale" content="` + escapeHTML(ogLocale) + `">
  <meta property="og:site_name" content="` + escapeHTML(siteNameFull) + `">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:title" content="` + escapeHTML(o.pageTitle) + `">
  <meta name="twitter:description" content="` + escapeHTML(o.metaDescription) + `">
  <meta name="twitter:image" content="` + cfg.Domain + `/images/` + slug + `.png">
  <meta name="theme-color" content="#3d7a5a">` + breadcrumbLdJSON(o.breadcrumbs) + `
</head>
<body>
  <a href="#main-content" class="skip-link">Skip to main content</a>
  ` + countdownBarHTML + `<header class="site-header" id="site-header" role="banner">
    <div class="container site-header__inner">
      <a href="/" class="site-header__logo" aria-label="` + escapeHTML(cfg.SiteName) + ` home">
        <img src="` + o.assetDepth + logoPath + `" alt="" class="site-header__logo-img" width="36" height="36">
        <span class="site-header__logo-text">` + escapeHTML(cfg.SiteName) + `</span>
      </a>
      <nav class="site-header__nav" aria-label="Main navigation">
        <a href="/">Home</a>
        ` + headerCtaHTML + `
      </nav>
    </div>
  </header>

  <main id="main-content" role="main">
    ` + o.mainContent + `
  </main>
` + stickyCtaHTML + `

  <footer class="site-footer" role="contentinfo">
    <div class="container">
      <div class="site-footer__top">
        <a href="/" class="site-footer__brand" aria-label="` + escapeHTML(cfg.SiteName) + ` home">
          <img src="` + o.assetDepth + logoPath + `" alt="" class="site-footer__logo" width="40" height="40">
          <span class="site-footer__name">` + escapeHTML(cfg.SiteName) + `</span>
        </a>
        <nav class="site-footer__nav" aria-label="Footer navigation">
          <div class="site-footer__col">
            <span class="site-footer__label">Cities</span>
            ` + a.footerCityLinks() + `
          </div>
          <div class="site-footer__col">
            <span class="site-footer__label">Legal</span>
            <a href="/legal/cookies.html">Cookie Policy</a>
          </div>
        </nav>
      </div>
      <div class="site-footer__bottom">
        <p class="site-footer__copy">&copy; 2026 ` + escapeHTML(cfg.SiteName) + `. Operated by Fever Up Entertainment.</p>
      </div>
    </div>
  </footer>

  <div id="cookie-consent-banner" class="cookie-banner cookie-banner--hidden" role="dialog" aria-label="Cookie consent">
    <div class="cookie-banner__inner">
      <p class="cookie-banner__text">We use cookies to measure site usage. <a href="/legal/cookies.html">Cookie Policy</a></p>
      <div class="cookie-banner__actions">
        <button type="button" class="cookie-banner__btn cookie-banner__btn--reject">Reject</button>
        <button type="button" class="cookie-banner__btn cookie-banner__btn--accept cta-button">Accept</button>
      </div>
    </div>
  </div>

  <script type="application/ld+json">
  ` + localBusinessLd + `
  </script>` + collectionPageLdJSON(name, o.canonical, o.metaDescription, cfg.CampaignName) + o.itemListLd + `
  <script src="` + o.assetDepth + `js/glide.min.js" defer></script>
  <script src="` + o.assetDepth + `js/main.min.js" defer></script>
</body>
</html>
`)
	return b.String()
}
