package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tzneal/coordconv/v2"
)

// Config holds the geoconvert settings.
type Config struct {
	Input     string    `mapstructure:"input"`
	Output    string    `mapstructure:"output"`
	Precision int       `mapstructure:"precision"`
	Zone      int       `mapstructure:"zone"`
	Decimals  int       `mapstructure:"decimals"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StandardZone is the Zone value that keeps every point in its standard
// zone.
const StandardZone = -1

var (
	inputKinds  = []string{"auto", "latlon", "utm", "mgrs"}
	outputKinds = []string{"latlon", "utm", "mgrs", "all"}
	logFormats  = []string{"text", "json"}
	logLevels   = []string{"debug", "info", "warn", "error"}
)

// flag name -> config key
var flagKeys = map[string]string{
	"input":      "input",
	"output":     "output",
	"precision":  "precision",
	"zone":       "zone",
	"decimals":   "decimals",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// RegisterFlags adds the geoconvert flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "auto", "input form: "+strings.Join(inputKinds, "|"))
	fs.StringP("output", "o", "mgrs", "output form: "+strings.Join(outputKinds, "|"))
	fs.IntP("precision", "p", 5, fmt.Sprintf("MGRS precision, %d..%d", coordconv.MinPrecision, coordconv.MaxPrecision))
	fs.IntP("zone", "z", StandardZone, "force UTM zone 1..60, 0 for UPS, -1 for the standard zone")
	fs.IntP("decimals", "d", 3, "decimal places of UTM/UPS meters")
	fs.String("log-level", "warn", "log level: "+strings.Join(logLevels, "|"))
	fs.String("log-format", "text", "log format: "+strings.Join(logFormats, "|"))
	fs.StringP("config", "c", "", "YAML config file (default ./geoconvert.yaml if present)")
}

// Load reads configuration from the flags, GEOCONVERT_* environment
// variables and an optional YAML file, in that order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("input", "auto")
	v.SetDefault("output", "mgrs")
	v.SetDefault("precision", 5)
	v.SetDefault("zone", StandardZone)
	v.SetDefault("decimals", 3)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	// Config file
	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("geoconvert")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: GEOCONVERT_LOG_LEVEL → log.level
	v.SetEnvPrefix("GEOCONVERT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Input = strings.ToLower(cfg.Input)
	cfg.Output = strings.ToLower(cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if !slices.Contains(inputKinds, c.Input) {
		errs = append(errs, fmt.Sprintf("input must be one of %s, got %q", strings.Join(inputKinds, ", "), c.Input))
	}
	if !slices.Contains(outputKinds, c.Output) {
		errs = append(errs, fmt.Sprintf("output must be one of %s, got %q", strings.Join(outputKinds, ", "), c.Output))
	}
	if c.Precision < coordconv.MinPrecision || c.Precision > coordconv.MaxPrecision {
		errs = append(errs, fmt.Sprintf("precision must be %d-%d, got %d", coordconv.MinPrecision, coordconv.MaxPrecision, c.Precision))
	}
	if c.Zone < StandardZone || c.Zone > coordconv.MaxUTMZone {
		errs = append(errs, fmt.Sprintf("zone must be %d-%d, got %d", StandardZone, coordconv.MaxUTMZone, c.Zone))
	}
	if c.Decimals < 0 || c.Decimals > 9 {
		errs = append(errs, fmt.Sprintf("decimals must be 0-9, got %d", c.Decimals))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Sprintf("log.format must be one of %s, got %q", strings.Join(logFormats, ", "), c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
