package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"xdoc/internal/config"
	"xdoc/internal/driver"
)

// settings — итоговые настройки команды: xdoc.toml, поверх него флаги.
type settings struct {
	cfg   config.Config
	color bool
	opts  driver.Options
}

// loadSettings reads --config, or discovers xdoc.toml above startDir, and
// applies the global flags that were set explicitly.
func loadSettings(cmd *cobra.Command, startDir string) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(startDir)
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("max-diagnostics") {
		if cfg.Diagnostics.Max, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}

	s := &settings{cfg: cfg, opts: driver.OptionsFromConfig(cfg)}
	switch cfg.Output.Color {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = writerIsTerminal(cmd.OutOrStdout())
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", cfg.Output.Color)
	}

	if s.opts.Jobs, err = flags.GetInt("jobs"); err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if cmd.Flags().Lookup("no-verbatim") != nil {
		if s.opts.NoVerbatim, err = cmd.Flags().GetBool("no-verbatim"); err != nil {
			return nil, fmt.Errorf("failed to get no-verbatim flag: %w", err)
		}
	}
	return s, nil
}

// outputFormat returns the command's --format, falling back to [output].format.
// A configured format the command does not support falls back to allowed[0].
func (s *settings) outputFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	if !cmd.Flags().Changed("format") {
		if slices.Contains(allowed, s.cfg.Output.Format) {
			return s.cfg.Output.Format, nil
		}
		return allowed[0], nil
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s", format)
}
