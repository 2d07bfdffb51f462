package plans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petalgen/petal/internal/testutil"
)

func TestLoadData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fever-plans.json")
	body := `{
		"london": {
			"experiences": [{"name": "Tea", "url": "u1", "priceText": "From £10"}],
			"giftCards": [{"name": "Card", "url": "u2"}],
			"candlelightExperiences": [{"name": "Candlelight", "url": "u3"}]
		},
		"manchester": [
			{"name": "Show", "url": "u4"}
		]
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	logger := &testutil.DummyLogger{}
	data := LoadData(path, logger)

	london := data.ForCity("london")
	if len(london.Experiences) != 1 || london.Experiences[0].Name != "Tea" {
		t.Errorf("london.Experiences = %+v", london.Experiences)
	}
	if len(london.GiftCards) != 1 || len(london.CandlelightExperiences) != 1 {
		t.Errorf("london buckets = %+v", london)
	}

	// Legacy shape: a flat array is the experiences bucket.
	manchester := data.ForCity("manchester")
	if len(manchester.Experiences) != 1 || manchester.Experiences[0].Name != "Show" {
		t.Errorf("legacy flat array not decoded as experiences: %+v", manchester)
	}
	if len(manchester.GiftCards) != 0 {
		t.Errorf("legacy shape grew gift cards: %+v", manchester.GiftCards)
	}
}

func TestLoadDataMissingFile(t *testing.T) {
	logger := &testutil.DummyLogger{}
	data := LoadData(filepath.Join(t.TempDir(), "absent.json"), logger)

	if len(data) != 0 {
		t.Errorf("missing file: data = %+v, want empty", data)
	}
	if len(logger.Warns) == 0 {
		t.Error("missing file should warn, not fail silently")
	}
}

func TestLoadDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	logger := &testutil.DummyLogger{}
	data := LoadData(path, logger)
	if len(data) != 0 {
		t.Errorf("invalid JSON: data = %+v, want empty", data)
	}
	if len(logger.Warns) == 0 {
		t.Error("invalid JSON should warn")
	}
}

func TestForCityUnknown(t *testing.T) {
	var data Data
	got := data.ForCity("nowhere")
	if len(got.Experiences) != 0 {
		t.Errorf("unknown city should yield empty plans, got %+v", got)
	}
}
