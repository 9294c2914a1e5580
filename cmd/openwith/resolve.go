package openwith

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/openwith/pkg/associations"
)

func newResolveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>...",
		Short: MsgResolveShort,
		Long:  MsgResolveLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}

			for _, path := range args {
				assoc, ok := associations.Resolve(path, rt.Table)
				if !ok {
					pterm.Info.Printfln("%s: no association", path)
					continue
				}
				inv := assoc.Invoke(path)
				pterm.Printfln("%s: %s %s", path, inv.Program, strings.Join(inv.Args, " "))
			}
			return nil
		},
	}
}
