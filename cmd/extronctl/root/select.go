package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagDevice string

var selectCmd = &cobra.Command{
	Use:   "select <input>",
	Short: "Route an input on a switcher",
	Long:  "Routes the given input number on a switcher. When more than one switcher is attached, pick it with --device.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if flagLocal {
			devices, err := localDiscover(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			device, err := resolveDevice(devices, flagDevice)
			if err != nil {
				return err
			}

			if err := localDriver(cfg).SwitchInput(cmd.Context(), device.Path, input); err != nil {
				return err
			}

			fmt.Printf("switched %s to input %s\n", device.Name, input)

			return nil
		}

		c, err := dialServer(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		name := flagDevice
		if name == "" {
			devices, err := c.ListDevices(cmd.Context())
			if err != nil {
				return err
			}

			device, err := resolveDevice(devices, "")
			if err != nil {
				return err
			}

			name = device.Name
		}

		if err := c.SelectInput(cmd.Context(), name, input); err != nil {
			return err
		}

		fmt.Printf("switched %s to input %s\n", name, input)

		return nil
	},
}

func init() {
	selectCmd.Flags().StringVarP(&flagDevice, "device", "d", "", "name of the switcher to drive")
	selectCmd.Flags().BoolVarP(&flagLocal, "local", "l", false, "drive the switcher over the local serial port instead of asking the server")
	rootCmd.AddCommand(selectCmd)
}
