// Package sitemap derives the site's sitemap.xml from the campaign domain
// and city list. It is independent of listing content: an empty city still
// gets its full set of page entries.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/petalgen/petal/internal/campaign"
)

// Fixed priorities per URL class.
const (
	priorityRoot = "1.0"
	priorityHub  = "0.9"
	prioritySub  = "0.8"
	priorityLeg  = "0.3"
)

var subTypes = []string{"ideas", "experiences", "events", "candlelight"}

// URL is a single <url> entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// URLSet is the sitemap document root.
type URLSet struct {
	XMLName        xml.Name `xml:"urlset"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	URLs           []URL    `xml:"url"`
}

// Build enumerates root + legal + every city hub + every (city, sub-page)
// URL: 2 + N + 4N entries for N cities. lastmod is the generation date
// (UTC), shared by all entries.
func Build(domain string, cities []campaign.City, now time.Time) URLSet {
	base := strings.TrimRight(domain, "/")
	lastmod := now.UTC().Format("2006-01-02")

	urls := []URL{
		{Loc: base + "/", LastMod: lastmod, ChangeFreq: "weekly", Priority: priorityRoot},
		{Loc: base + "/legal/cookies.html", LastMod: lastmod, ChangeFreq: "monthly", Priority: priorityLeg},
	}
	for _, city := range cities {
		urls = append(urls, URL{Loc: base + "/" + city.Slug + "/", LastMod: lastmod, ChangeFreq: "weekly", Priority: priorityHub})
		for _, t := range subTypes {
			urls = append(urls, URL{Loc: base + "/" + city.Slug + "/" + t + "/", LastMod: lastmod, ChangeFreq: "weekly", Priority: prioritySub})
		}
	}

	return URLSet{
		Xmlns:          "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		SchemaLocation: "http://www.sitemaps.org/schemas/sitemap/0.9 http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd",
		URLs:           urls,
	}
}

// Render marshals the document with the XML declaration prepended.
func Render(set URLSet) (string, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap: %w", err)
	}
	return xml.Header + string(body) + "\n", nil
}
