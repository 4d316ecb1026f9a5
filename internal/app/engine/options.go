package engine

import "time"

// Options represents configuration options for the Engine.
type Options struct {
	// VerifyInterval is the cadence of periodic internal state checks.
	// Zero disables them.
	VerifyInterval time.Duration
	// DepthLimit bounds the L2 snapshot logged with each verification.
	DepthLimit int
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		VerifyInterval: 30 * time.Second,
		DepthLimit:     25,
	}
}
