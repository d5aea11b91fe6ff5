// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// resources such as the database pool and the HTTP server.
const DefaultTimeout = 10 * time.Second
