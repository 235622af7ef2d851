package root

import (
	"github.com/spf13/cobra"
)

var rescanCmd = &cobra.Command{
	Use:   "rescan",
	Short: "Ask the server to rescan for switchers",
	Long:  "Triggers a fresh scan of the serial ports on a running server, then prints the refreshed list.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c, err := dialServer(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Rescan(cmd.Context()); err != nil {
			return err
		}

		devices, err := c.ListDevices(cmd.Context())
		if err != nil {
			return err
		}

		printDevices(devices)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(rescanCmd)
}
