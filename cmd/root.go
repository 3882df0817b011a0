package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "website-service",
	Short: "Marketing website and pricing API",
	Long:  "Serves the marketing website pages together with the pricing JSON and gRPC APIs.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
