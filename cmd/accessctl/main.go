package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"repoaccess/internal/interfaces/cli/status"
	"repoaccess/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "accessctl",
		Short:         "Inspect access conditions of repository objects",
		Long:          `accessctl evaluates resource policies of repository items and files, and issues and verifies reviewer download tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	rootCmd.AddCommand(
		status.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
