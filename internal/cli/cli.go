package cli

import (
	"flag"
	"io"
	"strings"
)

// CLIArgs are the command-line arguments that control a single generation run.
// Keep this small; add fields as modules need them.
type CLIArgs struct {
	// Campaign is the campaign identifier (data/campaigns/<id>.json).
	// Empty means "use the CAMPAIGN env var, else the default campaign".
	Campaign string

	// Root is the site root: campaign data is read from <Root>/data and
	// generated pages are written under it. Empty means "use the SITE_ROOT
	// env var, else the current directory".
	Root string

	// Track disables the build snapshot store when false.
	Track bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by passing
// arbitrary slices. The function is deterministic and does not read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("petal", flag.ContinueOnError)
	var (
		campaign = fs.String("campaign", "", "Campaign id, e.g. mothers-day (default: CAMPAIGN env)")
		root     = fs.String("root", "", "Site root containing data/ where pages are written (default: SITE_ROOT env)")
		track    = fs.Bool("track", true, "Record page snapshots and diff against the previous run")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		// Flag parsing errors are useful to return to caller
		return nil, err
	}

	return &CLIArgs{
		Campaign: strings.TrimSpace(*campaign),
		Root:     *root,
		Track:    *track,
		RawArgs:  args,
	}, nil
}
