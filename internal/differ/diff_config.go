package differ

import "time"

// DiffConfig holds configuration for inline (intra-paragraph) diffing
type DiffConfig struct {
	EnableSemanticCleanup bool
	Timeout               time.Duration
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		EnableSemanticCleanup: true,
		Timeout:               time.Second,
	}
}
