package main

import (
	"os"

	"github.com/spf13/cobra"

	"larder/internal/interfaces/cli/migrate"
	"larder/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "larder",
		Short: "Larder - household meal planning service",
		Long:  `Larder is the server-side data layer for a household meal planning app: ingredient catalog, recipes, pantry tracking and meal plans over a JSON API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
