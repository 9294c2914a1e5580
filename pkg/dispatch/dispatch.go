// Package dispatch decides, once per file-open event, whether an external
// helper program should handle the file instead of the host. It owns the
// debounce guard and the exclusion filter, orchestrates confirmation, and
// invokes the detached process launch. It is not a job scheduler or a
// process supervisor: launched processes are fire-and-forget.
package dispatch

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/openwith/pkg/associations"
	"github.com/arthur-debert/openwith/pkg/errors"
	"github.com/arthur-debert/openwith/pkg/launch"
	"github.com/arthur-debert/openwith/pkg/logging"
)

// Event is one file-open-like event from the host
type Event struct {
	// Path is the file about to be opened
	Path string

	// TriggerID identifies the user command that triggered the open,
	// matched against the exclusion rules
	TriggerID string
}

// Decision is the dispatcher's answer to the host
type Decision int

const (
	// NotHandled means the host proceeds with its default open and the
	// next handler in its chain
	NotHandled Decision = iota
	// Handled means the default open must be suppressed and the handler
	// chain stopped
	Handled
)

// String returns the string representation of a Decision
func (d Decision) String() string {
	if d == Handled {
		return "handled"
	}
	return "not-handled"
}

// Options configures a Dispatcher. Associations and Exclusions are loaded
// once and treated as immutable; reconfiguring means building a new
// Dispatcher, not mutating an existing one.
type Options struct {
	Associations []associations.Association
	Exclusions   []*regexp.Regexp

	// Confirm enables the interactive confirmation gate
	Confirm bool

	// Guard defaults to a fresh guard with DefaultDebounceWindow
	Guard *DebounceGuard

	// Launcher is required
	Launcher launch.ProcessLauncher

	// Optional collaborators; nil degrades to a permissive no-op
	Confirmer Confirmer
	Target    TargetProbe
	Recent    RecentFiles
	Notifier  Notifier

	// Clock defaults to time.Now, injectable for tests
	Clock func() time.Time
}

// Dispatcher performs one dispatch decision per file-open event and
// returns immediately
type Dispatcher struct {
	table     []associations.Association
	exclude   []*regexp.Regexp
	confirm   bool
	guard     *DebounceGuard
	launcher  launch.ProcessLauncher
	confirmer Confirmer
	target    TargetProbe
	recent    RecentFiles
	notifier  Notifier
	now       func() time.Time
	enabled   bool
	logger    zerolog.Logger
}

// New creates a dispatcher from opts. The dispatcher starts enabled.
func New(opts Options) (*Dispatcher, error) {
	if opts.Launcher == nil {
		return nil, errors.New(errors.ErrInvalidInput, "dispatcher requires a launcher")
	}

	guard := opts.Guard
	if guard == nil {
		guard = NewDebounceGuard(DefaultDebounceWindow)
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Dispatcher{
		table:     opts.Associations,
		exclude:   opts.Exclusions,
		confirm:   opts.Confirm,
		guard:     guard,
		launcher:  opts.Launcher,
		confirmer: opts.Confirmer,
		target:    opts.Target,
		recent:    opts.Recent,
		notifier:  opts.Notifier,
		now:       clock,
		enabled:   true,
		logger:    logging.GetLogger("dispatch"),
	}, nil
}

// SetEnabled toggles the mode gate
func (d *Dispatcher) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Enabled reports whether the dispatcher is active
func (d *Dispatcher) Enabled() bool {
	return d.enabled
}

// Handle runs one event through the gate pipeline. Every gate failure is a
// normal negative result returned as NotHandled with a nil error; only a
// launch failure produces a non-nil error, and it propagates without any
// rollback of state already mutated by earlier gates.
func (d *Dispatcher) Handle(ev Event) (Decision, error) {
	// Mode gate
	if !d.enabled {
		return NotHandled, nil
	}

	// Reentrancy gate: never act on content already being edited. The
	// upstream double-invocation that makes this necessary is not fully
	// understood; the gate just refuses anything that is not a pristine
	// just-about-to-load target.
	if d.target != nil && !d.target.Pristine() {
		d.logger.Debug().Str("path", ev.Path).Msg("target not pristine, skipping")
		return NotHandled, nil
	}

	// Debounce gate: a permitted activation updates the timestamp as part
	// of the check, so everything after this point has already consumed
	// the window.
	if !d.guard.TryActivate(d.now()) {
		d.logger.Debug().Str("path", ev.Path).Msg("debounced duplicate trigger")
		return NotHandled, nil
	}

	// Exclusion gate
	for _, re := range d.exclude {
		if re.MatchString(ev.TriggerID) {
			d.logger.Debug().
				Str("trigger", ev.TriggerID).
				Str("rule", re.String()).
				Msg("trigger excluded")
			return NotHandled, nil
		}
	}

	// Resolution
	assoc, ok := associations.Resolve(ev.Path, d.table)
	if !ok {
		return NotHandled, nil
	}

	// Argument substitution
	inv := assoc.Invoke(ev.Path)

	// Confirmation: a negative answer cancels with nothing launched; the
	// debounce timestamp stays updated.
	if d.confirm {
		if d.confirmer == nil || !d.confirmer.Confirm(inv.Program, inv.Args) {
			d.logger.Debug().Str("program", inv.Program).Msg("invocation declined")
			return NotHandled, nil
		}
	}

	d.logger.Info().
		Str("path", ev.Path).
		Str("program", inv.Program).
		Strs("args", inv.Args).
		Msg("launching external program")

	// Launch. A synchronous spawn failure is the one error that surfaces
	// to the host; failures after the detached child has started are
	// invisible here and the side effects below are never rolled back
	// for them.
	if err := d.launcher.Launch(inv); err != nil {
		return NotHandled, errors.Wrapf(err, errors.ErrLaunch,
			"failed to launch %s", inv.Program)
	}

	// Post-launch side effects
	if d.target != nil {
		d.target.Discard()
	}
	if d.recent != nil {
		d.recent.Add(ev.Path)
	}
	if d.notifier != nil {
		d.notifier.Notify(fmt.Sprintf("Opened %s in %s", filepath.Base(ev.Path), inv.Program))
	}

	return Handled, nil
}
