// Package lifecycle holds shared constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown.
const DefaultTimeout = 15 * time.Second
