package display

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrBadConfig is returned for configuration files that decode but do not
// describe a usable display.
var ErrBadConfig = errors.New("display: bad config")

// Config is the file form of a display's options.
//
//	width = 640
//	height = 480
//	verify = true
//	log_level = "debug"
//
//	[warmup]
//	blocks = 8
//	drawables = 256
//	gradients = 16
type Config struct {
	Width    int          `toml:"width"`
	Height   int          `toml:"height"`
	Verify   bool         `toml:"verify"`
	LogLevel string       `toml:"log_level"`
	Warmup   WarmupConfig `toml:"warmup"`
}

// WarmupConfig sizes the object pools.
type WarmupConfig struct {
	Blocks    int `toml:"blocks"`
	Drawables int `toml:"drawables"`
	Gradients int `toml:"gradients"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Width: 640, Height: 480}
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("display: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML configuration data. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("display: parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrBadConfig, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrBadConfig, c.Width, c.Height)
	}
	w := c.Warmup
	if w.Blocks < 0 || w.Drawables < 0 || w.Gradients < 0 {
		return fmt.Errorf("%w: negative warmup", ErrBadConfig)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("%w: log_level %q", ErrBadConfig, c.LogLevel)
	}
	return lvl, nil
}

// Options converts c to display options. A logger writing text to stderr
// is installed only when a log level is set.
func (c Config) Options() []Option {
	opts := []Option{
		WithVerify(c.Verify),
		WithPoolWarmup(c.Warmup.Blocks, c.Warmup.Drawables, c.Warmup.Gradients),
	}
	if lvl, err := c.level(); err == nil && c.LogLevel != "" {
		opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: lvl}))))
	}
	return opts
}
