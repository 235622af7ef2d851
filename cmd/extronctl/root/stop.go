package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop-server",
	Short: "Stop a running server",
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

		if err := c.StopServer(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("server stopping")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
