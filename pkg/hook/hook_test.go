package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/openwith/pkg/associations"
	"github.com/arthur-debert/openwith/pkg/dispatch"
)

// fakeHost records the handler table mutations
type fakeHost struct {
	handlers map[string]Handler
	adds     int
	removes  int
}

func newFakeHost() *fakeHost {
	return &fakeHost{handlers: make(map[string]Handler)}
}

func (h *fakeHost) AddOpenHandler(name string, handler Handler) {
	h.handlers[name] = handler
	h.adds++
}

func (h *fakeHost) RemoveOpenHandler(name string) {
	delete(h.handlers, name)
	h.removes++
}

type nopLauncher struct{}

func (nopLauncher) Launch(inv associations.Invocation) error { return nil }

func newTestDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New(dispatch.Options{Launcher: nopLauncher{}})
	require.NoError(t, err)
	return d
}

func TestBinding_RegisterUnregister(t *testing.T) {
	host := newFakeHost()
	b := NewBinding(host, newTestDispatcher(t))

	assert.False(t, b.Registered())

	b.Register()
	assert.True(t, b.Registered())
	assert.Contains(t, host.handlers, HandlerName)

	b.Unregister()
	assert.False(t, b.Registered())
	assert.NotContains(t, host.handlers, HandlerName)
}

func TestBinding_RegisterIdempotent(t *testing.T) {
	host := newFakeHost()
	b := NewBinding(host, newTestDispatcher(t))

	b.Register()
	b.Register()
	assert.Equal(t, 1, host.adds)

	b.Unregister()
	b.Unregister()
	assert.Equal(t, 1, host.removes)
}

func TestBinding_SetEnabled(t *testing.T) {
	host := newFakeHost()
	d := newTestDispatcher(t)
	b := NewBinding(host, d)

	b.SetEnabled(true)
	assert.True(t, b.Registered())
	assert.True(t, d.Enabled())

	b.SetEnabled(false)
	assert.False(t, b.Registered())
	assert.False(t, d.Enabled())
}

func TestBinding_RegisteredHandlerDispatches(t *testing.T) {
	host := newFakeHost()
	b := NewBinding(host, newTestDispatcher(t))
	b.Register()

	handler := host.handlers[HandlerName]
	require.NotNil(t, handler)

	// Empty table: the handler runs and declines
	decision, err := handler(dispatch.Event{Path: "notes.txt", TriggerID: "find-file"})
	require.NoError(t, err)
	assert.Equal(t, dispatch.NotHandled, decision)
}
