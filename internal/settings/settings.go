// Package settings loads user preferences for the wizflow CLI from a config
// file and WIZFLOW_* environment variables.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "WIZFLOW_CONFIG"

// Settings holds CLI preferences.
type Settings struct {
	Locale    string `mapstructure:"locale"`
	LogLevel  string `mapstructure:"log_level"`
	Output    string `mapstructure:"output"`
	Format    string `mapstructure:"format"`
	AltScreen bool   `mapstructure:"alt_screen"`
	// Metrics enables navigation metrics; MetricsFile receives them at the
	// end of a run.
	Metrics     bool   `mapstructure:"metrics"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Locale:    "en",
		LogLevel:  "info",
		Output:    "wizflow-result.yaml",
		Format:    "yaml",
		AltScreen: false,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "wizflow", "config.toml")
}

// Load reads settings. An explicit path wins over WIZFLOW_CONFIG, which
// wins over the default location. A missing file is not an error.
func Load(path string) (Settings, error) {
	v := newViper()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !isNotFound(err) {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

// Save writes settings to path, creating the directory if needed.
func Save(s Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("locale", s.Locale)
	v.Set("log_level", s.LogLevel)
	v.Set("output", s.Output)
	v.Set("format", s.Format)
	v.Set("alt_screen", s.AltScreen)
	v.Set("metrics", s.Metrics)
	v.Set("metrics_file", s.MetricsFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("metrics", d.Metrics)
	v.SetDefault("metrics_file", d.MetricsFile)

	v.SetConfigType("toml")
	v.SetEnvPrefix("WIZFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}
