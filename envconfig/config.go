// Package envconfig exposes the IMAGEPIPE_* environment variables as
// typed getters. Values are read on every call so tests can use
// t.Setenv without re-initializing anything.
package envconfig

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Var reads an environment variable, trimming whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool returns a function that reads a boolean variable (default false).
func Bool(k string) func() bool {
	return func() bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Uint returns a function that reads an unsigned integer variable with
// a default value.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Int64 returns a function that reads a signed integer variable with a
// default value.
func Int64(key string, defaultValue int64) func() int64 {
	return func() int64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// String returns a function that reads a string variable.
func String(key string) func() string {
	return func() string {
		return Var(key)
	}
}

var (
	// Debug enables additional debug logging.
	Debug = Bool("IMAGEPIPE_DEBUG")

	// Seed is the base random seed for training-mode augmentation.
	Seed = Int64("IMAGEPIPE_SEED", 0)

	// Output is the path raw tensor output is written to by the CLI.
	Output = String("IMAGEPIPE_OUTPUT")
)

// Devices returns the number of accelerator devices the distribution
// scope should target. Defaults to 1 (no data parallelism).
func Devices() int {
	return int(Uint("IMAGEPIPE_DEVICES", 1)())
}

// Workers returns the parallelism of the data loading stage.
// Defaults to the number of CPUs.
func Workers() int {
	return int(Uint("IMAGEPIPE_WORKERS", uint(runtime.NumCPU()))())
}

// LogLevel returns the slog level selected by IMAGEPIPE_DEBUG.
func LogLevel() slog.Level {
	if Debug() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// EnvVar describes a configuration variable for help output.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every supported variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"IMAGEPIPE_DEBUG":   {"IMAGEPIPE_DEBUG", Debug(), "Show additional debug information (e.g. IMAGEPIPE_DEBUG=1)"},
		"IMAGEPIPE_DEVICES": {"IMAGEPIPE_DEVICES", Devices(), "Number of accelerator devices for the distribution scope (default 1)"},
		"IMAGEPIPE_WORKERS": {"IMAGEPIPE_WORKERS", Workers(), "Number of data loading workers (default: number of CPUs)"},
		"IMAGEPIPE_SEED":    {"IMAGEPIPE_SEED", Seed(), "Base random seed for training-mode augmentation"},
		"IMAGEPIPE_OUTPUT":  {"IMAGEPIPE_OUTPUT", Output(), "Path the preprocess command writes raw tensor output to"},
	}
}
