// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and subscriptions.
const DefaultTimeout = 10 * time.Second
