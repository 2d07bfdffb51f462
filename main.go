package main

import (
	"fmt"
	"os"
	"time"

	"github.com/petalgen/petal/internal/assemble"
	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/cli"
	"github.com/petalgen/petal/internal/logging"
	"github.com/petalgen/petal/internal/plans"
	"github.com/petalgen/petal/internal/site"
	"github.com/petalgen/petal/internal/snapshot"
)

func main() {
	logger := logging.NewStdoutLogger("petal")

	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: petal [-campaign id] [-root dir] [-track=false]\n")
		os.Exit(2)
	}

	env, err := campaign.LoadEnv()
	if err != nil {
		logger.Error("environment", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	campaignID := env.Campaign
	if args.Campaign != "" {
		campaignID = args.Campaign
	}
	root := env.SiteRoot
	if args.Root != "" {
		root = args.Root
	}

	cfg, err := campaign.Load(root, campaignID)
	if err != nil {
		logger.Error("load campaign",
			logging.Field{Key: "campaign", Value: campaignID},
			logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}

	data := plans.LoadData(cfg.DataPath(root), logger)

	gen := site.New(cfg, data, assemble.New(cfg, cfg.Cities, assemble.DefaultFallbacks()), &site.FSWriter{Root: root}, logger)

	if args.Track {
		store, err := snapshot.Open(root, logger)
		if err != nil {
			logger.Warn("snapshot store unavailable", logging.Field{Key: "error", Value: err.Error()})
		} else {
			defer store.Close()
			gen.SetSnapshots(store)
		}
	}

	start := time.Now()
	pages, err := gen.Run()
	if err != nil {
		logger.Error("generate", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	logger.Info("done",
		logging.Field{Key: "campaign", Value: cfg.Slug},
		logging.Field{Key: "pages", Value: pages},
		logging.Field{Key: "elapsed", Value: time.Since(start).String()})
}
