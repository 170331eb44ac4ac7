package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/EDUARX24/Tickets-AI/internal/interfaces/cli/migrate"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/cli/seed"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "helpdesk",
		Short:        "Helpdesk - multi-tenant IT ticketing",
		Long:         `Helpdesk serves the ticketing web application and ships tools to migrate and seed its database.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
