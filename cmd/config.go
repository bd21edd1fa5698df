package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/spf13/cobra"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration directory",
	}

	var yes bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config.yaml into the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.Dir(o.cfgFile)
			p := filepath.Join(dir, assets.ConfigFileName)
			wrote, err := assets.WriteDefaultConfigIfMissing(dir)
			if err != nil {
				return err
			}
			if !wrote {
				if !yes {
					ok, err := console.ConfirmOverwrite(p)
					if err != nil {
						return err
					}
					if !ok {
						logging.Info("kept existing " + p)
						return nil
					}
				}
				if err := assets.WriteDefaultConfig(dir); err != nil {
					return err
				}
			}
			logging.Success("wrote " + p)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&yes, "yes", "y", false, "overwrite an existing config.yaml without prompting")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate merged configuration against the JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(o.cfgFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
