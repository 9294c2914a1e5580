package openwith

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// terminalConfirmer asks for approval with an interactive prompt. Without a
// terminal on stdin there is nobody to ask, so it declines.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(program string, args []string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false
	}

	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(fmt.Sprintf("Run %s %s?", program, strings.Join(args, " "))).
		Show()
	if err != nil {
		return false
	}
	return ok
}

// terminalNotifier prints the post-launch notification
type terminalNotifier struct{}

func (terminalNotifier) Notify(message string) {
	pterm.Success.Println(message)
}
