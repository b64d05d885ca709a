package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and TERMCLIP_* env var prefix. Hyphens in keys map
// to underscores, so log-level is read from TERMCLIP_LOG_LEVEL.
//
// Precedence (lowest → highest): defaults → config file → TERMCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix("TERMCLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	// Resolved through viper so TERMCLIP_CONFIG works as well as --config.
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("termclip")
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "termclip"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// addCommonFlags adds the flags shared by every clipboard command.
func addCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "path to config file (overrides auto-discovery)")
	f.String("backend", "auto", "clipboard backend: auto|osc52|native")
	f.String("theme", "dark", "status colors: dark|light")
	f.BoolP("quiet", "q", false, "suppress status output")
	f.String("log-format", "auto", "log format: auto|text|json")
	f.String("log-level", "warn", "log level: debug|info|warn|error")
}

// addTargetFlag adds the --target flag.
func addTargetFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("target", "t", "clipboard", "selection target: clipboard|primary|secondary|query")
}
