package assemble

import (
	"fmt"
	"strings"

	"github.com/petalgen/petal/internal/plans"
)

// The JSON-LD blocks are assembled by hand, not via encoding/json: the
// output must stay byte-for-byte stable across runs and field order matters
// for that.

// itemListLdJSON builds an ItemList script block for a page's listings.
// Returns "" when there is nothing to list. Item URLs are only emitted when
// absolute; relative fallback links have no place in structured data.
func itemListLdJSON(items []plans.RawListing, listName string) string {
	if len(items) == 0 {
		return ""
	}
	entries := make([]string, 0, len(items))
	for i, item := range items {
		url := ""
		if strings.HasPrefix(item.URL, "http") {
			url = item.URL
		}
		e := fmt.Sprintf(`{"@type":"ListItem","position":%d,"name":"%s"`, i+1, escapeJSON(item.Name))
		if url != "" {
			e += fmt.Sprintf(`,"url":"%s"`, escapeJSON(url))
		}
		entries = append(entries, e+"}")
	}
	ld := fmt.Sprintf(`{"@context":"https://schema.org","@type":"ItemList","name":"%s","numberOfItems":%d,"itemListElement":[%s]}`,
		escapeJSON(listName), len(items), strings.Join(entries, ","))
	return "\n  <script type=\"application/ld+json\">\n  " + ld + "\n  </script>"
}

// collectionPageLdJSON reinforces the event-listing-page signal on city pages.
func collectionPageLdJSON(cityName, canonical, description, campaignName string) string {
	ld := fmt.Sprintf(`{"@context":"https://schema.org","@type":"CollectionPage","name":"%s events and experiences in %s","url":"%s","description":"%s"}`,
		escapeJSON(campaignName), escapeJSON(cityName), escapeJSON(canonical), escapeJSON(description))
	return "\n  <script type=\"application/ld+json\">\n  " + ld + "\n  </script>"
}

type breadcrumb struct {
	Name string
	Item string
}

func breadcrumbLdJSON(list []breadcrumb) string {
	if len(list) == 0 {
		return ""
	}
	entries := make([]string, 0, len(list))
	for i, b := range list {
		entries = append(entries, fmt.Sprintf(`{"@type":"ListItem","position":%d,"name":"%s","item":"%s"}`,
			i+1, escapeJSON(b.Name), escapeJSON(b.Item)))
	}
	return "\n  <script type=\"application/ld+json\">\n  " +
		fmt.Sprintf(`{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[%s]}`, strings.Join(entries, ",")) +
		"\n  </script>"
}
