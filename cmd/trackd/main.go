package main

import (
	"os"

	"github.com/spf13/cobra"

	"trackd/internal/interfaces/cli/migrate"
	"trackd/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trackd",
		Short: "trackd - issue tracking backend",
		Long:  `trackd is an issue tracking backend with per-product ticket numbering, product-scoped resources and a full change history.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
