// Package launch starts external helper programs detached from the calling
// process. Success means "process was started", never "process completed":
// no launcher holds a handle, waits, reaps, or cancels.
package launch

import (
	"github.com/arthur-debert/openwith/pkg/associations"
)

// ProcessLauncher spawns a detached process for a resolved invocation.
// Implementations return as soon as the child has been started.
type ProcessLauncher interface {
	Launch(inv associations.Invocation) error
}
