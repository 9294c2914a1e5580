package launch

import (
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/openwith/pkg/associations"
	"github.com/arthur-debert/openwith/pkg/logging"
)

const defaultShell = "/bin/sh"

// ShellLauncher runs the program through a nohup shell wrapper so the child
// survives termination of the calling process. Stdout and stderr go to the
// null sink; the child's handle is released immediately so the parent never
// blocks its own exit on it.
type ShellLauncher struct {
	shell  string
	logger zerolog.Logger
}

// NewShellLauncher creates a launcher using /bin/sh
func NewShellLauncher() *ShellLauncher {
	return &ShellLauncher{
		shell:  defaultShell,
		logger: logging.GetLogger("launch.shell"),
	}
}

// Launch starts the invocation's program detached and returns immediately
func (l *ShellLauncher) Launch(inv associations.Invocation) error {
	line := commandLine(inv.Program, inv.Args)

	l.logger.Debug().
		Str("shell", l.shell).
		Str("command", line).
		Msg("starting detached process")

	cmd := exec.Command(l.shell, "-c", line)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Drop the handle so nothing ever waits on the child.
	return cmd.Process.Release()
}

// commandLine builds the wrapped shell command with every argument quoted
// defensively
func commandLine(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quote(program))
	for _, a := range args {
		parts = append(parts, quote(a))
	}
	return "nohup " + strings.Join(parts, " ") + " >/dev/null 2>&1"
}

// quote single-quotes s for the POSIX shell
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
