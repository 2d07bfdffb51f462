// Package seocheck lints a generated site tree for the indexability
// regressions that have bitten these campaign sites before: blocked robots,
// stale sitemaps, missing canonicals, duplicate titles, orphaned city pages.
package seocheck

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/logging"
	"github.com/petalgen/petal/internal/urlx"
)

var subSlugs = []string{"ideas", "experiences", "events", "candlelight"}

// Report collects findings. Errors fail the check; warnings are advisory.
type Report struct {
	Errors   []string
	Warnings []string
}

func (r *Report) errf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// OK reports whether the site passed with no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Checker verifies one generated site.
type Checker struct {
	root   string
	cfg    *campaign.Config
	logger logging.Logger
}

func New(root string, cfg *campaign.Config, logger logging.Logger) *Checker {
	return &Checker{
		root:   root,
		cfg:    cfg,
		logger: logger.With(logging.Field{Key: "component", Value: "seocheck"}),
	}
}

// Run executes every check and returns the combined report.
func (c *Checker) Run() *Report {
	r := &Report{}
	c.checkRobots(r)
	c.checkSitemap(r)
	c.checkPageMeta(r)
	c.checkUniqueTitles(r)
	c.checkCrawlability(r)
	c.checkStructuredData(r)

	c.logger.Info("seo check finished",
		logging.Field{Key: "errors", Value: len(r.Errors)},
		logging.Field{Key: "warnings", Value: len(r.Warnings)})
	return r
}

func (c *Checker) checkRobots(r *Report) {
	raw, err := os.ReadFile(filepath.Join(c.root, "robots.txt"))
	if err != nil {
		r.errf("robots.txt not found")
		return
	}
	robots := string(raw)
	if !strings.Contains(robots, "Allow: /") && strings.Contains(robots, "Disallow: /\n") {
		r.errf("robots.txt blocks root (Disallow: /) — pages would not be indexed")
	}
	if !strings.Contains(robots, "Disallow: /data/") {
		r.warnf("consider Disallow: /data/ (JSON not for indexing)")
	}
	if !strings.Contains(strings.ToLower(robots), "sitemap: http") {
		r.errf("Sitemap: not found in robots.txt")
	}
}

// sitemapDoc is the minimal shape needed to pull <loc> values back out.
type sitemapDoc struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

func (c *Checker) checkSitemap(r *Report) {
	raw, err := os.ReadFile(filepath.Join(c.root, "sitemap.xml"))
	if err != nil {
		r.errf("sitemap.xml not found")
		return
	}
	var doc sitemapDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		r.errf("sitemap.xml invalid: %v", err)
		return
	}

	seen := make(map[string]struct{}, len(doc.URLs))
	for _, u := range doc.URLs {
		loc := strings.TrimSpace(u.Loc)

		// Compare canonical forms so /a/ vs /a, host case and default-port
		// spellings cannot hide a duplicate.
		canon, err := urlx.Canonicalize(loc, urlx.CanonicalizeOptions{StripTrailingSlash: true})
		if err != nil {
			r.errf("sitemap URL invalid: %s", loc)
			continue
		}
		if _, dup := seen[canon]; dup {
			r.errf("sitemap contains duplicate URL: %s", loc)
		}
		seen[canon] = struct{}{}

		if !urlx.SameHost(loc, c.cfg.Domain) {
			r.warnf("sitemap URL wrong domain: %s", loc)
			continue
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(loc, c.cfg.Domain), "/")
		var onDisk string
		switch {
		case rel == "":
			onDisk = filepath.Join(c.root, "index.html")
		case strings.HasSuffix(rel, ".html"):
			onDisk = filepath.Join(c.root, filepath.FromSlash(rel))
		default:
			onDisk = filepath.Join(c.root, filepath.FromSlash(strings.TrimSuffix(rel, "/")), "index.html")
		}
		if _, err := os.Stat(onDisk); err != nil {
			r.errf("sitemap URL not found on disk: /%s", rel)
		}
	}
	if len(doc.URLs) < 10 {
		r.warnf("sitemap has few URLs (%d) — check all city pages are included", len(doc.URLs))
	}
}

func (c *Checker) openDoc(relPath string) (*goquery.Document, error) {
	f, err := os.Open(filepath.Join(c.root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return goquery.NewDocumentFromReader(f)
}

// checkPageMeta verifies canonical, title, description and the absence of
// noindex on every generated city page (and its presence on 404.html).
func (c *Checker) checkPageMeta(r *Report) {
	type target struct {
		rel  string
		name string
	}
	targets := []target{}
	for _, city := range c.cfg.Cities {
		targets = append(targets, target{city.Slug + "/index.html", city.Name})
		for _, sub := range subSlugs {
			targets = append(targets, target{city.Slug + "/" + sub + "/index.html", city.Name + " " + sub})
		}
	}

	for _, t := range targets {
		doc, err := c.openDoc(t.rel)
		if err != nil {
			r.warnf("%s: file not found %s", t.name, t.rel)
			continue
		}
		if doc.Find(`link[rel="canonical"]`).Length() == 0 {
			r.errf("%s: missing canonical", t.name)
		}
		if strings.TrimSpace(doc.Find("title").Text()) == "" {
			r.errf("%s: missing title", t.name)
		}
		if v, _ := doc.Find(`meta[name="description"]`).Attr("content"); strings.TrimSpace(v) == "" {
			r.errf("%s: missing meta description", t.name)
		}
		if robots, _ := doc.Find(`meta[name="robots"]`).Attr("content"); strings.Contains(robots, "noindex") {
			r.errf("%s: has noindex (should be indexable)", t.name)
		}
	}

	if doc, err := c.openDoc("404.html"); err == nil {
		robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
		if !strings.Contains(robots, "noindex") {
			r.warnf("404.html should have meta robots noindex")
		}
	}
}

// checkUniqueTitles flags duplicate <title> values across city pages, a
// classic duplicate-content signal.
func (c *Checker) checkUniqueTitles(r *Report) {
	titles := make(map[string]string)
	for _, city := range c.cfg.Cities {
		rels := []string{city.Slug + "/index.html"}
		for _, sub := range subSlugs {
			rels = append(rels, city.Slug+"/"+sub+"/index.html")
		}
		for _, rel := range rels {
			doc, err := c.openDoc(rel)
			if err != nil {
				continue
			}
			title := strings.TrimSpace(doc.Find("title").Text())
			if title == "" {
				continue
			}
			if other, dup := titles[title]; dup {
				r.errf("duplicate page title %q (%s and %s)", title, other, rel)
			} else {
				titles[title] = rel
			}
		}
	}
}

// checkCrawlability verifies the home page links every city hub and a city
// hub links its sub-pages.
func (c *Checker) checkCrawlability(r *Report) {
	home, err := c.openDoc("index.html")
	if err != nil {
		r.warnf("index.html not found; skipping crawlability checks")
		return
	}

	hrefs := make(map[string]struct{})
	home.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			hrefs[href] = struct{}{}
		}
	})
	linked := 0
	for _, city := range c.cfg.Cities {
		if _, ok := hrefs["/"+city.Slug+"/"]; ok {
			linked++
			continue
		}
		if _, ok := hrefs[city.Slug+"/"]; ok {
			linked++
		}
	}
	if linked != len(c.cfg.Cities) {
		r.warnf("home does not link to all cities (found %d/%d)", linked, len(c.cfg.Cities))
	}

	if len(c.cfg.Cities) == 0 {
		return
	}
	city := c.cfg.Cities[0]
	hub, err := c.openDoc(city.Slug + "/index.html")
	if err != nil {
		return
	}
	for _, sub := range subSlugs {
		want := "/" + city.Slug + "/" + sub + "/"
		found := false
		hub.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			if href == want || href == sub+"/" {
				found = true
				return false
			}
			return true
		})
		if !found {
			r.warnf("city page %s does not link to %s", city.Slug, sub)
		}
	}
}

func (c *Checker) checkStructuredData(r *Report) {
	doc, err := c.openDoc("index.html")
	if err != nil {
		return
	}
	if doc.Find(`script[type="application/ld+json"]`).Length() == 0 {
		r.warnf("home has no JSON-LD (WebSite/FAQPage recommended)")
	}
}
