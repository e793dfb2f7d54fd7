package config

import "github.com/caarlos0/env/v11"

const EnvPrefix = "TECHMARKET_"

// parseEnv overlays cfg with TECHMARKET_* variables. Unset variables leave
// the current values untouched.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
