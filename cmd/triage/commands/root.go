// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-16

// Package commands implements the triage CLI.
package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Label new issues and place pull requests from GitHub webhook events",
	Long: `triage runs as a GitHub Action. For a newly opened issue it reads the
bug report form answers (severity, available workarounds), derives a priority
label and adds it together with the "Issue triaged" label. For pull requests it
decides which project board column the pull request belongs in.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A local .env is optional; Actions runners provide real inputs.
		if err := godotenv.Load(); err == nil && verbose {
			log.Printf("Loaded environment from .env")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .github/triage.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
