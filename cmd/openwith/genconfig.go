package openwith

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/openwith/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				fmt.Print(config.GenerateConfigContent())
				return nil
			}

			cfg, err := config.DefaultConfig()
			if err != nil {
				return err
			}

			path := filepath.Join(xdg.ConfigHome, config.ConfigDirName, "openwith.toml")
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			pterm.Success.Printfln("wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false,
		"Write the default config to the XDG config directory instead of stdout")

	return cmd
}
