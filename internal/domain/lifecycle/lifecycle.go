// Package lifecycle holds limits shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
