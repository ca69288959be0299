package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/cli"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
)

// FileConfig is the shape of config.json. Keys match the global flag names.
type FileConfig struct {
	APIURL       string `json:"api-url"`
	Timeout      string `json:"timeout"`
	SessionStore string `json:"session-store"`
}

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := filepath.Join(ctx.ConfigDir, filepath.Base(constants.DefaultConfigFile))

	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing config: %w", err)
	}

	if err := os.MkdirAll(ctx.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := FileConfig{
		APIURL:       ctx.APIURL,
		Timeout:      ctx.Timeout.String(),
		SessionStore: storeKind(ctx),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = constants.DefaultAPIURL
	}
	if ctx.Timeout <= 0 {
		cfg.Timeout = constants.DefaultTimeout.String()
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(ctx.Stdout(), "Initialized %s config at: %s\n", constants.DisplayName, path)
	return nil
}

// ParseTimeout reads a timeout written by InitCmd
func (c FileConfig) ParseTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}
