package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "sabidos-api",
		Short:   "Sabidos study productivity API",
		Version: version,
		// serve is the default when no subcommand is given
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), true)
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
