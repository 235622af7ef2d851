package root

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avkit/extronctl/internal/domain/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known switchers",
	Long:  "Lists the switchers held by a running server, or scans the local serial ports when --local is given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if flagLocal {
			devices, err := localDiscover(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			printDevices(devices)

			return nil
		}

		c, err := dialServer(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		devices, err := c.ListDevices(cmd.Context())
		if err != nil {
			return err
		}

		printDevices(devices)

		return nil
	},
}

func printDevices(devices []model.Device) {
	if len(devices) == 0 {
		fmt.Println("no switchers found")

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH")

	for _, d := range devices {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Path)
	}

	w.Flush()
}

func init() {
	listCmd.Flags().BoolVarP(&flagLocal, "local", "l", false, "scan the local serial ports instead of asking the server")
	rootCmd.AddCommand(listCmd)
}
