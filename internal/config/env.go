package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env captures the environment of the invoking (non-elevated) user. The tool
// runs under sudo, so per-user side effects (group membership, the desktop
// symlink path) are scoped by SUDO_USER rather than the effective user.
type Env struct {
	SudoUser string `env:"SUDO_USER"`
	Home     string `env:"HOME"`
}

// LoadEnv reads the invoking-user environment. A missing SUDO_USER is a
// startup precondition failure: every path derived from it would be
// malformed, so the run is refused before any side effect.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if e.SudoUser == "" {
		return Env{}, fmt.Errorf("SUDO_USER is not set; run the tool with sudo from a regular user session")
	}
	return e, nil
}
