// Command seocheck lints a generated site tree and exits non-zero when it
// finds indexability errors. Run it after the generator, before deploy.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/petalgen/petal/internal/campaign"
	"github.com/petalgen/petal/internal/logging"
	"github.com/petalgen/petal/internal/seocheck"
)

func main() {
	logger := logging.NewStdoutLogger("seocheck")

	fs := flag.NewFlagSet("seocheck", flag.ExitOnError)
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

	cfg, err := campaign.Load(root, campaignID)
	if err != nil {
		logger.Error("load campaign",
			logging.Field{Key: "campaign", Value: campaignID},
			logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}

	report := seocheck.New(root, cfg, logger).Run()

	for _, w := range report.Warnings {
		fmt.Printf("WARN  %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("ERROR %s\n", e)
	}
	if !report.OK() {
		fmt.Printf("\n%d error(s), %d warning(s)\n", len(report.Errors), len(report.Warnings))
		os.Exit(1)
	}
	fmt.Printf("all checks passed (%d warning(s))\n", len(report.Warnings))
}
