package launch

import (
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/openwith/pkg/associations"
	"github.com/arthur-debert/openwith/pkg/logging"
)

// NativeLauncher delegates to the operating system's "open with default
// handler" primitive. Only the file path is passed; the association's
// program and argument template are ignored.
type NativeLauncher struct {
	goos   string
	logger zerolog.Logger
}

// NewNativeLauncher creates a launcher for the current platform
func NewNativeLauncher() *NativeLauncher {
	return &NativeLauncher{
		goos:   runtime.GOOS,
		logger: logging.GetLogger("launch.native"),
	}
}

// Launch hands inv.Path to the OS open primitive, detached
func (l *NativeLauncher) Launch(inv associations.Invocation) error {
	argv := openArgv(l.goos, inv.Path)

	l.logger.Debug().
		Strs("argv", argv).
		Str("path", inv.Path).
		Msg("delegating to OS open primitive")

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}

// openArgv returns the platform's open command for path
func openArgv(goos, path string) []string {
	switch goos {
	case "darwin":
		return []string{"open", path}
	case "windows":
		// start treats its first quoted argument as a window title
		return []string{"cmd", "/c", "start", "", path}
	default:
		return []string{"xdg-open", path}
	}
}
