// gatewayctl composes a gateway registry from a host config file and lets an
// operator inspect it, run deposits, and serve the HTTP API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	hostlib "github.com/paygate-dev/paygate-host-sdk"
	"github.com/paygate-dev/paygate-host-sdk/discovery"
	"github.com/paygate-dev/paygate-host-sdk/gateways/acmebank"
	"github.com/paygate-dev/paygate-host-sdk/gateways/globex"
	"github.com/paygate-dev/paygate-host-sdk/host"
)

var (
	configPath  string
	manifestDir string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "gatewayctl",
	Short: "Compose and exercise the payment gateway registry",
	Long: `gatewayctl builds the gateway registry from a host config file the same
way an embedding application would at startup, then lists gateways, routes
deposits, or serves the HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "host config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&manifestDir, "manifests", "", "directory to scan for gateway manifests")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// defaultCatalog lists every gateway this binary can compose. This is the
// explicit registration list: adding a gateway means adding a line here.
func defaultCatalog() (*discovery.Catalog, error) {
	cat := discovery.NewCatalog()
	if err := cat.Add(acmebank.Name, acmebank.Factory); err != nil {
		return nil, err
	}
	if err := cat.Add(globex.Name, globex.Factory); err != nil {
		return nil, err
	}
	return cat, nil
}

func buildHost() (*host.Host, error) {
	if configPath == "" {
		return nil, fmt.Errorf("a host config file is required (--config)")
	}

	cat, err := defaultCatalog()
	if err != nil {
		return nil, err
	}

	opts := []host.Option{
		host.WithCatalog(cat),
		host.WithConfigFile(configPath),
		host.WithMiddleware(
			hostlib.PanicRecoveryMiddleware(),
			hostlib.LoggingMiddleware(slog.Default()),
		),
	}
	if manifestDir != "" {
		opts = append(opts, host.WithManifestDir(manifestDir))
	}
	return host.New(opts...)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
