package aob

import (
	"strconv"

	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/prefilter"
)

// Config controls how a needle is built and searched.
//
// The zero value is not useful; start from DefaultConfig.
//
// Example:
//
//	config := aob.DefaultConfig()
//	config.Method = pattern.Scalar // force the byte-at-a-time verifier
//	needle, err := aob.CompileWithConfig("48 8B ? ? 05", config)
type Config struct {
	// Method forces the masked-equality kernel used to verify candidates.
	// MethodAuto picks the widest kernel the host supports that fits the
	// needle.
	// Default: pattern.MethodAuto
	Method pattern.Method

	// Prefilter enables candidate search on the needle's literal bytes.
	// When false every offset is verified.
	// Default: true
	Prefilter bool

	// TrackPrefilter monitors the ratio of verified matches to prefilter
	// candidates during each search, and abandons the prefilter for the rest
	// of the haystack when it yields mostly false positives.
	// Default: false
	TrackPrefilter bool

	// Tracker configures TrackPrefilter.
	// Default: prefilter.DefaultTrackerConfig()
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns a configuration with the default settings.
func DefaultConfig() Config {
	return Config{
		Method:         pattern.MethodAuto,
		Prefilter:      true,
		TrackPrefilter: false,
		Tracker:        prefilter.DefaultTrackerConfig(),
	}
}

// Validate checks if the configuration is valid.
//
// Returns an error describing the first invalid field. The needle length is
// not known here; a kernel wider than the needle is rejected at construction.
func (c Config) Validate() error {
	switch c.Method {
	case pattern.MethodAuto, pattern.Scalar, pattern.Swar32, pattern.Swar64, pattern.Sse2, pattern.Avx2:
	default:
		return &ConfigError{
			Field:   "Method",
			Message: "unknown method " + c.Method.String(),
		}
	}
	if c.Method != pattern.MethodAuto && !c.Method.Supported() {
		return &ConfigError{
			Field:   "Method",
			Message: c.Method.String() + " is not supported on this CPU",
		}
	}

	if c.TrackPrefilter {
		if c.Tracker.CheckInterval < 1 {
			return &ConfigError{
				Field:   "Tracker.CheckInterval",
				Message: "must be at least 1",
			}
		}
		if c.Tracker.MinEfficiency < 0 || c.Tracker.MinEfficiency > 1 {
			return &ConfigError{
				Field:   "Tracker.MinEfficiency",
				Message: "must be between 0 and 1",
			}
		}
	}

	return nil
}

// validateFor checks the parts of the configuration that depend on the
// needle length.
func (c Config) validateFor(n int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Method != pattern.MethodAuto && c.Method.Lanes() > n {
		return &ConfigError{
			Field:   "Method",
			Message: c.Method.String() + " needs a needle of at least " + strconv.Itoa(c.Method.Lanes()) + " positions",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "aob: invalid config: " + e.Field + ": " + e.Message
}
