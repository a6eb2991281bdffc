package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/faultd/faultd/pkg/config"
	"github.com/faultd/faultd/pkg/engine"
	"github.com/faultd/faultd/pkg/logging"
	"github.com/spf13/cobra"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	port           int
	host           string
	configFile     string
	readTimeout    int
	logLevel       string
	logFormat      string
	noRequestLogs  bool
	trustedProxies string
}

var serveFlagVals serveFlags

// serveCmd starts the simulation server in the foreground.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the failure simulation server (foreground)",
	Example: `  # Start with defaults on port 8000
  faultd serve

  # Custom port and JSON logs
  faultd serve --port 3000 --log-format json

  # Load settings from a file, trust a reverse proxy for client IPs
  faultd serve --config faultd.yaml --trusted-proxies 10.0.0.0/8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, &serveFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	serveCmd.Flags().IntVarP(&f.port, "port", "p", 8000, "HTTP server port")
	serveCmd.Flags().StringVar(&f.host, "host", "0.0.0.0", "Listen address")
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (JSON or YAML)")
	serveCmd.Flags().IntVar(&f.readTimeout, "read-timeout", 30, "Read timeout in seconds")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text or json)")
	serveCmd.Flags().BoolVar(&f.noRequestLogs, "no-request-logs", false, "Disable per-request logging")
	serveCmd.Flags().StringVar(&f.trustedProxies, "trusted-proxies", "", "Comma-separated CIDRs whose forwarding headers are trusted")
}

// runServe resolves configuration (file, then environment, then flags),
// starts the engine, and blocks until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, f *serveFlags) error {
	cfg := config.DefaultServerConfiguration()
	if f.configFile != "" {
		loaded, err := config.LoadFromFile(f.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	// Flags win, but only when set explicitly.
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.HTTPPort = f.port
	}
	if flags.Changed("host") {
		cfg.Host = f.host
	}
	if flags.Changed("read-timeout") {
		cfg.ReadTimeout = f.readTimeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if flags.Changed("no-request-logs") {
		cfg.LogRequests = !f.noRequestLogs
	}
	if flags.Changed("trusted-proxies") {
		cfg.TrustedProxies = splitCSV(f.trustedProxies)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv := engine.NewServer(cfg, engine.WithLogger(log))
	if err := srv.Start(); err != nil {
		return err
	}
	log.Info("faultd ready", "addr", cfg.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("shutting down", "signal", sig.String())

	return srv.Stop()
}

// splitCSV splits a comma-separated flag value, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
