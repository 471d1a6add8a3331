package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the CLI's optional defaults, loaded from
// .deb822ctl.toml in the current directory if present.
type config struct {
	DefaultArch    string   `toml:"default_arch"`
	ActiveProfiles []string `toml:"active_profiles"`
}

func configPath() string {
	if p := os.Getenv("DEB822CTL_CONFIG"); p != "" {
		return p
	}
	return ".deb822ctl.toml"
}

// loadConfig reads path if it exists; a missing file is not an error,
// it just yields zero-value defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
