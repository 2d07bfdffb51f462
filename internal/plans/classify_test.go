package plans

import "testing"

func listing(name, url string) RawListing {
	return RawListing{Name: name, URL: url}
}

func TestClassifyBuckets(t *testing.T) {
	cp := CityPlans{
		Experiences: []RawListing{
			{Name: "Afternoon Tea 21 Mar From", URL: "u1"},
			{Name: "Candlelight 21 Mar - 22 Mar", URL: "u2"},
			{Name: "Exhibition 1 Jan - 15 Mar", URL: "u3"},
			{Name: "Immersive Show 21 Mar -", URL: "u4"},
			{Name: "Gin Tasting", URL: "u5"},
			{Name: "", URL: "u6"},
		},
	}

	got := Classify(cp)

	wantEvents := []string{"u1", "u2"}
	if len(got.Events) != len(wantEvents) {
		t.Fatalf("Events = %d listings, want %d", len(got.Events), len(wantEvents))
	}
	for i, url := range wantEvents {
		if got.Events[i].URL != url {
			t.Errorf("Events[%d].URL = %q, want %q", i, got.Events[i].URL, url)
		}
	}

	// Everything except the single-date listing and the nameless one.
	wantExp := []string{"u2", "u3", "u4", "u5"}
	if len(got.Experiences) != len(wantExp) {
		t.Fatalf("Experiences = %d listings, want %d", len(got.Experiences), len(wantExp))
	}
	for i, url := range wantExp {
		if got.Experiences[i].URL != url {
			t.Errorf("Experiences[%d].URL = %q, want %q", i, got.Experiences[i].URL, url)
		}
	}
}

func TestClassifyShortRangeBoundary(t *testing.T) {
	// Span of exactly ShortRangeDays still counts as an event; one more does not.
	atBoundary := CityPlans{Experiences: []RawListing{
		{Name: "Run 1 Mar - 15 Apr", URL: "a"}, // |63-108| = 45
	}}
	beyond := CityPlans{Experiences: []RawListing{
		{Name: "Run 1 Mar - 16 Apr", URL: "b"}, // 46
	}}

	if got := Classify(atBoundary); len(got.Events) != 1 {
		t.Errorf("span == ShortRangeDays: Events = %d, want 1", len(got.Events))
	}
	if got := Classify(beyond); len(got.Events) != 0 {
		t.Errorf("span > ShortRangeDays: Events = %d, want 0", len(got.Events))
	}
}

func TestClassifyIdeas(t *testing.T) {
	cp := CityPlans{
		GiftCards: []RawListing{
			listing("Fever Gift Card", "g1"),
		},
		Experiences: []RawListing{
			listing("Spa Gift Package", "e1"),
			listing("Fever Gift Card", "g1"), // same pair as the gift card, must dedup
			listing("Plain Experience 1", "p1"),
			listing("Plain Experience 2", "p2"),
		},
	}

	got := Classify(cp)

	// gift card + gift-like experience + both plain extras
	want := []string{"g1", "e1", "p1", "p2"}
	if len(got.Ideas) != len(want) {
		t.Fatalf("Ideas = %d listings, want %d: %+v", len(got.Ideas), len(want), got.Ideas)
	}
	for i, url := range want {
		if got.Ideas[i].URL != url {
			t.Errorf("Ideas[%d].URL = %q, want %q", i, got.Ideas[i].URL, url)
		}
	}
}

func TestClassifyIdeasExtraCap(t *testing.T) {
	cp := CityPlans{}
	for i := 0; i < MaxIdeasExtra+5; i++ {
		cp.Experiences = append(cp.Experiences, RawListing{
			Name: "Experience " + string(rune('A'+i)),
			URL:  "u" + string(rune('A'+i)),
		})
	}

	got := Classify(cp)
	if len(got.Ideas) != MaxIdeasExtra {
		t.Errorf("Ideas = %d listings, want cap %d", len(got.Ideas), MaxIdeasExtra)
	}
}

func TestClassifySameNameDifferentURL(t *testing.T) {
	cp := CityPlans{
		GiftCards: []RawListing{
			listing("Gift Card", "g1"),
		},
		Experiences: []RawListing{
			listing("Gift Card", "g2"),
		},
	}

	got := Classify(cp)
	if len(got.Ideas) != 2 {
		t.Fatalf("Ideas = %d listings, want 2 (same name, distinct URL)", len(got.Ideas))
	}
}

func TestClassifyIdempotent(t *testing.T) {
	cp := CityPlans{
		Experiences: []RawListing{
			{Name: "Afternoon Tea 21 Mar From", URL: "u1"},
			{Name: "Candlelight 21 Mar - 22 Mar", URL: "u2"},
			{Name: "Spa Gift Package", URL: "u3"},
		},
		GiftCards: []RawListing{{Name: "Card", URL: "g1"}},
	}

	first := Classify(cp)
	second := Classify(cp)

	for name, pair := range map[string][2][]RawListing{
		"Events":      {first.Events, second.Events},
		"Experiences": {first.Experiences, second.Experiences},
		"Ideas":       {first.Ideas, second.Ideas},
	} {
		a, b := pair[0], pair[1]
		if len(a) != len(b) {
			t.Fatalf("%s: %d vs %d listings across runs", name, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s[%d]: %+v vs %+v", name, i, a[i], b[i])
			}
		}
	}
}

func TestClassifyEveryNamedListingBucketed(t *testing.T) {
	cp := CityPlans{
		Experiences: []RawListing{
			{Name: "Single 21 Mar From", URL: "u1"},
			{Name: "Short 21 Mar - 22 Mar", URL: "u2"},
			{Name: "Long 1 Jan - 15 Mar", URL: "u3"},
			{Name: "Open 21 Mar -", URL: "u4"},
			{Name: "Dateless", URL: "u5"},
		},
	}

	got := Classify(cp)
	bucketed := make(map[string]struct{})
	for _, p := range got.Events {
		bucketed[p.URL] = struct{}{}
	}
	for _, p := range got.Experiences {
		bucketed[p.URL] = struct{}{}
	}
	for _, p := range cp.Experiences {
		if _, ok := bucketed[p.URL]; !ok {
			t.Errorf("listing %q in neither events nor experiences", p.Name)
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	got := Classify(CityPlans{})
	if len(got.Events) != 0 || len(got.Experiences) != 0 || len(got.Ideas) != 0 {
		t.Errorf("Classify(empty) = %+v, want all buckets empty", got)
	}
}
