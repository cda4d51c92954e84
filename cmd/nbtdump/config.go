package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/nbt"
	"github.com/wippyai/nbt/errors"
	"github.com/wippyai/nbt/export"
	"github.com/wippyai/nbt/source"
)

// configEnv names the environment variable consulted when --config is not given.
const configEnv = "NBTDUMP_CONFIG"

// Config holds the resolved settings for one run.
type Config struct {
	// Format is empty until resolved; run picks text for terminals and
	// JSON otherwise.
	Format        export.Format
	LogLevel      zapcore.Level
	Indent        int
	MaxInputBytes int64
	MaxDepth      int
	Trace         bool
	Color         bool
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel:      zapcore.WarnLevel,
		Indent:        2,
		MaxInputBytes: source.DefaultMaxSize,
		MaxDepth:      nbt.DefaultMaxDepth,
		Color:         true,
	}
}

// nbtdump config.toml key mapping.
type fileConfig struct {
	Format        string `toml:"format"`
	LogLevel      string `toml:"log_level"`
	Indent        int    `toml:"indent"`
	MaxInputBytes int64  `toml:"max_input_bytes"`
	MaxDepth      int    `toml:"max_depth"`
	Trace         bool   `toml:"trace"`
	Color         bool   `toml:"color"`
}

// loadConfig overlays the TOML file at path onto DefaultConfig. An empty
// path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Cause(err).
			Detail("load config %s", path).
			Build()
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("unknown config keys in %s: %s", path, strings.Join(keys, ", ")))
	}

	if meta.IsDefined("format") {
		f, err := export.ParseFormat(raw.Format)
		if err != nil {
			return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "format")
		}
		cfg.Format = f
	}
	if meta.IsDefined("log_level") {
		lvl, err := zapcore.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log_level")
		}
		cfg.LogLevel = lvl
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}
	if meta.IsDefined("max_input_bytes") {
		if raw.MaxInputBytes < 0 {
			return Config{}, errors.InvalidInput(errors.PhaseConfig, "max_input_bytes must not be negative")
		}
		cfg.MaxInputBytes = raw.MaxInputBytes
	}
	if meta.IsDefined("max_depth") {
		if raw.MaxDepth <= 0 {
			return Config{}, errors.InvalidInput(errors.PhaseConfig, "max_depth must be positive")
		}
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("trace") {
		cfg.Trace = raw.Trace
	}
	if meta.IsDefined("color") {
		cfg.Color = raw.Color
	}
	return cfg, nil
}

// configPath picks the --config flag, falling back to NBTDUMP_CONFIG.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(configEnv)
}
