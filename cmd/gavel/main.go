package main

import (
	"os"

	"github.com/spf13/cobra"

	"gavel/internal/interfaces/cli/migrate"
	"gavel/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gavel",
		Short: "Gavel - an online auction service",
		Long:  `Gavel is an online auction service with session-based authentication, audited login provenance, and an admin panel.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
