// Package config holds the analysis and output settings of one seqstat
// invocation, unmarshalled from Viper (flags, SEQSTAT_* env, config file).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"seqstat-core/motif"
	"seqstat-core/sequence"
	"seqstat-core/window"
	"seqstat/internal/output"
)

// Keys shared by flags, env vars and config files.
const (
	KeyWindowSize       = "window-size"
	KeyRegionWindowSize = "region-window-size"
	KeyThreshold        = "threshold"
	KeyMotif            = "motif"
	KeyRegionIndex      = "region-index"
	KeyWithSeq          = "with-seq"
	KeyOutput           = "output"
	KeyNoHeader         = "no-header"
	KeyNoMatchExitCode  = "no-match-exit-code"
	KeyLogLevel         = "log-level"
	KeyQuiet            = "quiet"
	KeyCacheSize        = "cache-size"
)

// EnvPrefix is prepended to upper-cased keys, e.g. SEQSTAT_WINDOW_SIZE.
const EnvPrefix = "SEQSTAT"

// Config is the root-level settings struct.
type Config struct {
	// window for the GC profile and the motif histogram
	WindowSize int `mapstructure:"window-size"`
	// window for GC/AT-rich classification and region selection
	RegionWindowSize int     `mapstructure:"region-window-size"`
	Threshold        float64 `mapstructure:"threshold"`
	Motif            string  `mapstructure:"motif"`
	RegionIndex      int     `mapstructure:"region-index"`
	// attach the selected window's bases to the selection block
	WithSeq bool `mapstructure:"with-seq"`

	Output          string `mapstructure:"output"`
	NoHeader        bool   `mapstructure:"no-header"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`
	// number of memoized report sections kept per session
	CacheSize int `mapstructure:"cache-size"`
}

// New returns a Viper instance with defaults and env binding installed.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	Defaults(v)
	return v
}

// Defaults registers the default value of every key.
func Defaults(v *viper.Viper) {
	v.SetDefault(KeyWindowSize, 1000)
	v.SetDefault(KeyRegionWindowSize, window.DefaultRegionSize)
	v.SetDefault(KeyThreshold, window.DefaultThreshold)
	v.SetDefault(KeyMotif, "ATG")
	v.SetDefault(KeyRegionIndex, 0)
	v.SetDefault(KeyWithSeq, false)
	v.SetDefault(KeyOutput, output.FormatText)
	v.SetDefault(KeyNoHeader, false)
	v.SetDefault(KeyNoMatchExitCode, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyCacheSize, 256)
}

// ReadFile merges a YAML/TOML/JSON config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	c.Motif = strings.TrimSpace(c.Motif)
	return c, c.Validate()
}

// Header reports whether text output starts with a header row.
func (c Config) Header() bool { return !c.NoHeader }

// Validate checks every setting up front, so a bad value is rejected
// before any section runs. Whether region-index falls inside the sequence
// is only known once it is loaded.
func (c Config) Validate() error {
	if err := sequence.CheckWindowSize(c.WindowSize); err != nil {
		return fmt.Errorf("--%s: %w", KeyWindowSize, err)
	}
	if err := sequence.CheckWindowSize(c.RegionWindowSize); err != nil {
		return fmt.Errorf("--%s: %w", KeyRegionWindowSize, err)
	}
	if err := window.CheckThreshold(c.Threshold); err != nil {
		return fmt.Errorf("--%s: %w", KeyThreshold, err)
	}
	if _, err := motif.Normalize(c.Motif); err != nil {
		return fmt.Errorf("--%s: %w", KeyMotif, err)
	}
	if c.RegionIndex < 0 {
		return fmt.Errorf("--%s: %w: %d", KeyRegionIndex, sequence.ErrRegionIndexOutOfRange, c.RegionIndex)
	}
	switch c.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatPretty:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.CacheSize < 0 {
		return errors.New("--cache-size must be ≥ 0")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
