package openwith

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/openwith/pkg/dispatch"
	"github.com/arthur-debert/openwith/pkg/launch"
)

// cliTrigger identifies terminal-driven dispatches to the exclusion filter
const cliTrigger = "cli"

func newOpenCmd(configPath *string) *cobra.Command {
	var native bool

	cmd := &cobra.Command{
		Use:   "open <file>...",
		Short: MsgOpenShort,
		Long:  MsgOpenLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}

			var launcher launch.ProcessLauncher = launch.NewShellLauncher()
			if native {
				launcher = launch.NewNativeLauncher()
			}

			// Each path on the command line is its own logical event,
			// so the duplicate-trigger guard is disabled here.
			d, err := dispatch.New(dispatch.Options{
				Associations: rt.Table,
				Exclusions:   rt.Exclude,
				Confirm:      rt.Confirm,
				Guard:        dispatch.NewDebounceGuard(0),
				Launcher:     launcher,
				Confirmer:    terminalConfirmer{},
				Notifier:     terminalNotifier{},
			})
			if err != nil {
				return err
			}

			for _, path := range args {
				decision, err := d.Handle(dispatch.Event{Path: path, TriggerID: cliTrigger})
				if err != nil {
					return err
				}
				if decision == dispatch.NotHandled {
					pterm.Info.Printfln("no association for %s", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&native, "native", false,
		"Delegate to the OS open primitive instead of the association's program")

	return cmd
}
