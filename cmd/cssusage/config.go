package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssusage"
)

var k = koanf.New(".")

// flagKeys maps CLI flag names onto config keys. Flags not listed here
// (--config) never reach koanf.
var flagKeys = map[string]string{
	"verbose":     "verbose",
	"quiet":       "quiet",
	"color":       "color",
	"root":        "root",
	"stylesheet":  "stylesheet",
	"output":      "output",
	"ignore":      "ignore",
	"format":      "report.format",
	"strict":      "report.strict",
	"ext":         "scan.extensions",
	"exclude-dir": "scan.exclude-dirs",
	"exclude":     "scan.exclude",
	"gitignore":   "scan.gitignore",
}

// loadConfig loads configuration with precedence:
// flags > env > project file > user file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssusage.yaml"
	}

	// Load config files and env vars
	if err := loadConfigFromPath(userConfigPath(), configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Unchanged flags only fill keys
	// that no file or env var has set.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration files (later paths override earlier
// ones) and environment variables. Missing files are skipped.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPaths ...string) error {
	for _, configPath := range configPaths {
		if configPath == "" {
			continue
		}
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (CSSUSAGE_* prefix)
	if err := k.Load(env.ProviderWithValue("CSSUSAGE_", ".", envValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// listKeys hold comma-separated values when set from the environment.
var listKeys = map[string]bool{
	"ignore":            true,
	"scan.extensions":   true,
	"scan.exclude-dirs": true,
	"scan.exclude":      true,
}

// envKey maps a variable name onto a config key:
//
//	CSSUSAGE_REPORT_FORMAT     -> report.format
//	CSSUSAGE_SCAN_EXCLUDE_DIRS -> scan.exclude-dirs
//
// Unknown variables map to "".
func envKey(name string) string {
	for _, key := range flagKeys {
		want := strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key))
		if name == "CSSUSAGE_"+want {
			return key
		}
	}
	return ""
}

// envValue is the koanf env callback; unknown variables are dropped.
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if key == "" || !listKeys[key] {
		return key, value
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// userConfigPath returns $XDG_CONFIG_HOME/cssusage/config.yaml
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "cssusage", "config.yaml")
}

// buildScanConfig constructs the library's Config struct from koanf state.
func buildScanConfig() cssusage.Config {
	config := cssusage.DefaultConfig()

	config.Root = getString("root", config.Root)
	config.Stylesheet = getString("stylesheet", config.Stylesheet)
	config.Output = getString("output", config.Output)
	config.Extensions = getStrings("scan.extensions", config.Extensions)
	config.ExcludeDirs = getStrings("scan.exclude-dirs", config.ExcludeDirs)
	config.Exclude = getStrings("scan.exclude", nil)
	config.UseGitIgnore = getBool("scan.gitignore", false)
	config.Ignore = getStrings("ignore", nil)

	return config
}

// getString returns the config value for key, or defaultVal when unset.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the config value for key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getStrings returns the config list for key, or defaultVal when unset or empty.
func getStrings(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}
