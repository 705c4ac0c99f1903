package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays FINANCES_* environment variables. Unset variables leave
// the field untouched; malformed values panic.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
