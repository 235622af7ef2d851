package root

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avkit/extronctl/internal/runtime"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the control server",
	Long:  "Scans the serial ports for switchers and serves the control API over gRPC until stopped by a signal or a stop-server call.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		opts, err := serveOptions(flagListen)
		if err != nil {
			return err
		}

		runtime.New(opts...).Run()

		return nil
	},
}

func serveOptions(listen string) ([]runtime.ServiceOption, error) {
	if listen == "" {
		return nil, nil
	}

	host, portStr, err := net.SplitHostPort(listen)
	if err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %w", listen, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid listen port %q: %w", portStr, err)
	}

	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("listen port %d out of range", port)
	}

	return []runtime.ServiceOption{runtime.WithListenAddress(host, port)}, nil
}

func init() {
	serveCmd.Flags().StringVarP(&flagListen, "listen", "l", "", "listen address, host:port (overrides GRPC_SERVER_HOST/PORT)")

	rootCmd.AddCommand(serveCmd)
}
