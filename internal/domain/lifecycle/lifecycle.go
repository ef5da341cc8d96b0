// Package lifecycle holds timeouts shared by the application lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work performed in fx hooks.
const DefaultTimeout = 10 * time.Second
