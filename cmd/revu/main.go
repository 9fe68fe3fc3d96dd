package main

import (
	"os"

	"github.com/spf13/cobra"

	"revu/internal/interfaces/cli/migrate"
	"revu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "revu",
		Short: "revu - a book and article review community",
		Long:  `revu serves a review community where readers request and publish book and article reviews, follow each other, and browse a shared activity feed.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
