package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the mediaapi CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mediaapi",
		Short: "Media API - movie and TV browsing backend",
		Long: `mediaapi serves the movie and TV browsing API: user accounts,
favorites, reviews and a proxy to The Movie Database.

Configuration is read from the environment (PORT, TOKEN_SECRET_KEY,
MONGODB_URL, REDIS_ADDR, TMDB_BASE_URL, TMDB_KEY, ...).`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("mediaapi " + versionString())
		},
	}
}
