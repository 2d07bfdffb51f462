// Package site orchestrates one generation run: classify each city's
// listings, assemble the hub and sub-pages, emit the sitemap, and hand every
// document to a FileWriter. Cities are processed sequentially so the write
// log stays deterministic; there is no cross-city state to parallelize over.
package site

import (
	"fmt"
	"time"

	"github.com/petalgen/petal/internal/assemble"
	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/logging"
	"github.com/petalgen/petal/internal/plans"
	"github.com/petalgen/petal/internal/sitemap"
	"github.com/petalgen/petal/internal/snapshot"
)

// Generator runs one campaign build. Construct with New, then Run once;
// re-running with identical inputs and generation date yields identical
// output (the sitemap lastmod is the only date-dependent field).
type Generator struct {
	cfg    *campaign.Config
	data   plans.Data
	asm    *assemble.Assembler
	writer FileWriter
	logger logging.Logger

	// snapshots is optional; nil disables build tracking.
	snapshots *snapshot.Store

	// now is injectable for deterministic tests.
	now func() time.Time
}

func New(cfg *campaign.Config, data plans.Data, asm *assemble.Assembler, writer FileWriter, logger logging.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		data:   data,
		asm:    asm,
		writer: writer,
		logger: logger.With(logging.Field{Key: "component", Value: "generator"}),
		now:    time.Now,
	}
}

// SetSnapshots enables build tracking through the given store.
func (g *Generator) SetSnapshots(s *snapshot.Store) { g.snapshots = s }

// SetClock overrides the generation clock.
func (g *Generator) SetClock(now func() time.Time) { g.now = now }

// CityPages assembles the five documents for one city: hub plus the four
// sub-pages, in a fixed order.
func (g *Generator) CityPages(city campaign.City, now time.Time) ([]assemble.Page, error) {
	cp := g.data.ForCity(city.Slug)
	cl := plans.Classify(cp)

	pages := make([]assemble.Page, 0, 1+len(assemble.SubPageTypes))
	pages = append(pages, g.asm.HubPage(city, cp, now))
	for _, t := range assemble.SubPageTypes {
		p, err := g.asm.SubPage(city, t, cp, cl, now)
		if err != nil {
			return nil, fmt.Errorf("assemble %s/%s: %w", city.Slug, t, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// Run generates every city page and the sitemap. It returns the number of
// HTML documents written and aborts on the first write error.
func (g *Generator) Run() (int, error) {
	if len(g.cfg.Cities) == 0 {
		g.logger.Warn("campaign has no cities; nothing to generate", logging.Field{Key: "campaign", Value: g.cfg.Slug})
		return 0, nil
	}

	now := g.now().UTC()
	runID := ""
	if g.snapshots != nil {
		id, err := g.snapshots.StartRun(g.cfg.Slug, now)
		if err != nil {
			// Tracking failures never block a build.
			g.logger.Warn("snapshot run not started", logging.Field{Key: "error", Value: err.Error()})
		} else {
			runID = id
		}
	}

	g.logger.Info("generation started",
		logging.Field{Key: "campaign", Value: g.cfg.Slug},
		logging.Field{Key: "cities", Value: len(g.cfg.Cities)},
		logging.Field{Key: "plans", Value: g.data.Stats()})

	count := 0
	for _, city := range g.cfg.Cities {
		pages, err := g.CityPages(city, now)
		if err != nil {
			return count, err
		}
		for _, p := range pages {
			if err := g.writer.WriteFile(p.Path, []byte(p.HTML)); err != nil {
				return count, err
			}
			g.logger.Info("generated", logging.Field{Key: "path", Value: p.Path})
			g.trackPage(runID, p)
			count++
		}
	}

	xml, err := sitemap.Render(sitemap.Build(g.cfg.Domain, g.cfg.Cities, now))
	if err != nil {
		return count, err
	}
	if err := g.writer.WriteFile("sitemap.xml", []byte(xml)); err != nil {
		return count, err
	}
	g.logger.Info("generated", logging.Field{Key: "path", Value: "sitemap.xml"})

	if g.snapshots != nil && runID != "" {
		if err := g.snapshots.FinishRun(runID, count); err != nil {
			g.logger.Warn("snapshot run not finished", logging.Field{Key: "error", Value: err.Error()})
		}
	}

	g.logger.Info("generation done", logging.Field{Key: "pages", Value: count})
	return count, nil
}

func (g *Generator) trackPage(runID string, p assemble.Page) {
	if g.snapshots == nil || runID == "" {
		return
	}
	change, err := g.snapshots.RecordPage(runID, p.Path, p.HTML)
	if err != nil {
		g.logger.Warn("snapshot not recorded", logging.Field{Key: "path", Value: p.Path}, logging.Field{Key: "error", Value: err.Error()})
		return
	}
	if change != nil && change.Changed {
		g.logger.Info("page changed since last run",
			logging.Field{Key: "path", Value: p.Path},
			logging.Field{Key: "added_chars", Value: change.AddedChars},
			logging.Field{Key: "removed_chars", Value: change.RemovedChars})
	}
}
