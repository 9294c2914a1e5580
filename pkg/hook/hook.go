// Package hook wires the dispatcher into a host editor's file-open handler
// chain. The dispatcher itself only exposes Handle; how the host calls it
// is this package's concern.
package hook

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/openwith/pkg/dispatch"
	"github.com/arthur-debert/openwith/pkg/logging"
)

// HandlerName identifies the openwith handler in the host's chain
const HandlerName = "openwith"

// Handler is the host-facing handler signature. A Handled decision tells
// the host to suppress its default open and stop the chain; NotHandled
// tells it to proceed with the next handler.
type Handler func(ev dispatch.Event) (dispatch.Decision, error)

// Host is the editor-integration surface: a named handler table for
// file-open-like events
type Host interface {
	AddOpenHandler(name string, h Handler)
	RemoveOpenHandler(name string)
}

// Binding ties one dispatcher to one host and owns its registration state
type Binding struct {
	host       Host
	dispatcher *dispatch.Dispatcher
	registered bool
	logger     zerolog.Logger
}

// NewBinding creates an unregistered binding
func NewBinding(host Host, d *dispatch.Dispatcher) *Binding {
	return &Binding{
		host:       host,
		dispatcher: d,
		logger:     logging.GetLogger("hook"),
	}
}

// Register installs the dispatcher's handler in the host chain. Idempotent.
func (b *Binding) Register() {
	if b.registered {
		return
	}
	b.host.AddOpenHandler(HandlerName, b.dispatcher.Handle)
	b.registered = true
	b.logger.Debug().Msg("handler registered")
}

// Unregister removes the handler from the host chain. Idempotent.
func (b *Binding) Unregister() {
	if !b.registered {
		return
	}
	b.host.RemoveOpenHandler(HandlerName)
	b.registered = false
	b.logger.Debug().Msg("handler unregistered")
}

// Registered reports whether the handler is currently installed
func (b *Binding) Registered() bool {
	return b.registered
}

// SetEnabled toggles both the dispatcher's mode gate and the registration,
// mirroring a host minor-mode switch
func (b *Binding) SetEnabled(enabled bool) {
	b.dispatcher.SetEnabled(enabled)
	if enabled {
		b.Register()
		return
	}
	b.Unregister()
}
