package campaign

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is process-level configuration: everything a run can pick up without
// flags. A .env file in the working directory is loaded first when present,
// matching how the generator is run on the campaign build machines.
type Env struct {
	// Campaign is the default campaign id when the -campaign flag is empty.
	Campaign string `env:"CAMPAIGN" envDefault:"mothers-day"`

	// SiteRoot is the default site root when the -root flag is empty.
	SiteRoot string `env:"SITE_ROOT" envDefault:"."`

	// PreviewPorts is the port ladder the preview server walks until one
	// is free.
	PreviewPorts []int `env:"PREVIEW_PORTS" envDefault:"3000,3001,3080"`
}

// LoadEnv reads .env (optional) and parses the process environment.
func LoadEnv() (*Env, error) {
	// Not finding a .env file is the normal case outside build machines.
	_ = godotenv.Load()

	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
