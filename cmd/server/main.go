// Command server runs the local preview server for a generated site: it
// serves the static tree, regenerates on demand via POST /api/generate and
// notifies connected browsers over a websocket so they can reload.
package main

import (
	"flag"
	"os"

	"github.com/petalgen/petal/internal/assemble"
	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/logging"
	"github.com/petalgen/petal/internal/plans"
	"github.com/petalgen/petal/internal/server"
	"github.com/petalgen/petal/internal/site"
)

func main() {
	logger := logging.NewStdoutLogger("server")

	fs := flag.NewFlagSet("server", flag.ExitOnError)
	campaignFlag := fs.String("campaign", "", "campaign id (overrides CAMPAIGN)")
	rootFlag := fs.String("root", "", "site root directory (overrides SITE_ROOT)")
	fs.Parse(os.Args[1:])

	env, err := campaign.LoadEnv()
	if err != nil {
		logger.Error("environment", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	campaignID := env.Campaign
	if *campaignFlag != "" {
		campaignID = *campaignFlag
	}
	root := env.SiteRoot
	if *rootFlag != "" {
		root = *rootFlag
	}

	generate := func() (int, error) {
		cfg, err := campaign.Load(root, campaignID)
		if err != nil {
			return 0, err
		}
		data := plans.LoadData(cfg.DataPath(root), logger)
		gen := site.New(cfg, data, assemble.New(cfg, cfg.Cities, assemble.DefaultFallbacks()), &site.FSWriter{Root: root}, logger)
		return gen.Run()
	}

	srv, err := server.New(server.Config{
		Root:     root,
		Ports:    env.PreviewPorts,
		Generate: generate,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("server setup", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
}
