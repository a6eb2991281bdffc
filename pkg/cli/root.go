package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "faultd",
	Short: "faultd is an HTTP API failure simulator",
	Long: `faultd serves deliberately broken HTTP responses so clients can exercise
their error handling: arbitrary status codes, malformed JSON, slow and hung
responses, rate limiting, random faults, and emulated network errors.

Configuration can be provided via flags, environment variables, or a
configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
