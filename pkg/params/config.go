package params

import (
	"fmt"
	"log/slog"

	"github.com/camparam/camparam-go/pkg/kv"
	"github.com/camparam/camparam-go/pkg/log"
)

// Config configures a parameter session.
type Config struct {
	// Logger receives operational log output. Nil discards.
	Logger *slog.Logger

	// EventLogger receives one structured event per setter decision,
	// committed batch and lifecycle change. Nil disables event logging.
	EventLogger log.Logger

	// DenoisePlates selects the planes processed by wavelet denoise:
	// 0 YCbCr, 1 CbCr only, 2 streamline YCbCr, 3 streamlined CbCr.
	// Any other value selects streamline YCbCr.
	DenoisePlates int

	// ZSL burst defaults used when a request does not carry them.
	ZSLBurstInterval int
	ZSLBackLookCount int
	ZSLQueueDepth    int

	// Seed is an optional flattened "k=v;k=v" state loaded before the
	// defaults are applied. Keys the defaults do not touch keep their
	// seeded value.
	Seed string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DenoisePlates:    0,
		ZSLBurstInterval: 1,
		ZSLBackLookCount: 2,
		ZSLQueueDepth:    2,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.ZSLBurstInterval < 0 || c.ZSLBackLookCount < 0 || c.ZSLQueueDepth < 0 {
		return fmt.Errorf("%w: negative ZSL burst setting", ErrInvalidConfig)
	}
	if c.Seed != "" {
		if _, err := kv.Unflatten(c.Seed); err != nil {
			return fmt.Errorf("%w: seed: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
