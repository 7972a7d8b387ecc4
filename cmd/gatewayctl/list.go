package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered gateways",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := buildHost()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCONNECT URL")
		for name, g := range h.Registry().All() {
			connect := "-"
			if linker, ok := g.(gateway.ConnectLinker); ok {
				connect = linker.ConnectURL()
			}
			fmt.Fprintf(w, "%s\t%s\n", name, connect)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
