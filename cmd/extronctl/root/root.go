package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avkit/extronctl/internal/adapters/outbound/client"
	"github.com/avkit/extronctl/internal/config"
)

var (
	flagAddr  string
	flagLocal bool
)

// rootCmd is the base command; all operations live in subcommands.
var rootCmd = &cobra.Command{
	Use:           "extronctl",
	Short:         "Control Extron SIS video switchers over serial or the network",
	Long:          "extronctl discovers attached Extron switchers and routes their inputs, either directly over the serial link or through a running extronctl server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Cobra root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAddr, "addr", "a", "", "address of a running extronctl server (default from GRPC_CLIENT_ADDRESS)")
	rootCmd.Version = versionString()
}

func versionString() string {
	if config.ServiceVersion == "" {
		return "dev"
	}

	if config.CommitSHA != "" {
		return fmt.Sprintf("%s (%s)", config.ServiceVersion, config.CommitSHA)
	}

	return config.ServiceVersion
}

func loadConfig() (*config.ServiceConfig, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if flagAddr != "" {
		cfg.GRPCClient.Address = flagAddr
	}

	return cfg, nil
}

func dialServer(cfg *config.ServiceConfig) (*client.ControlClient, error) {
	c, err := client.New(cfg.GRPCClient)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.GRPCClient.Address, err)
	}

	return c, nil
}
