package dispatch

// Confirmer asks the user to approve an invocation before anything is
// launched. Blocking is fine: the host runs the dispatcher on its own
// thread and a negative answer is an ordinary cancellation.
type Confirmer interface {
	Confirm(program string, args []string) bool
}

// TargetProbe exposes the state of the buffer/target that is about to
// receive the file content. Pristine reports whether the target is still
// unmodified and empty; Discard closes it after a successful launch so the
// host does not load the file content itself.
type TargetProbe interface {
	Pristine() bool
	Discard()
}

// RecentFiles records that a path was opened, for the host's recent-files
// bookkeeping
type RecentFiles interface {
	Add(path string)
}

// Notifier surfaces a human-readable message to the user after a
// successful launch
type Notifier interface {
	Notify(message string)
}
