package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/paygate-dev/paygate-host-sdk/host"
)

var depositGateway string

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Run a deposit through a gateway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}

		h, err := buildHost()
		if err != nil {
			return err
		}

		name := depositGateway
		if name == "" {
			name, err = pickGateway(h)
			if err != nil {
				return err
			}
		}

		result, err := h.Deposit(cmd.Context(), name, amount)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	depositCmd.Flags().StringVarP(&depositGateway, "gateway", "g", "", "gateway to deposit through")
	rootCmd.AddCommand(depositCmd)
}

// isInteractive checks if we're running in an interactive terminal.
func isInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// pickGateway prompts for a gateway when none was given on the flag.
func pickGateway(h *host.Host) (string, error) {
	var names []string
	for name := range h.Registry().All() {
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no gateways registered")
	}
	if !isInteractive() {
		return "", fmt.Errorf("no gateway selected; pass --gateway (one of %v)", names)
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select a gateway").
			Options(huh.NewOptions(names...)...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}
