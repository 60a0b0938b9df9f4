package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration the viewer would run with: built-in defaults,
then the --config file, then WIREFRAME_* environment variables
(e.g. WIREFRAME_SCENE_FOCAL_DISTANCE=250).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, "", "")
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	return cmd
}
