// Command scriptbook is the terminal client for the script catalog API.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/scriptbook-backend/internal/app"
	"github.com/heartmarshall/scriptbook-backend/internal/client/apiclient"
	"github.com/heartmarshall/scriptbook-backend/internal/client/tui"
	"github.com/heartmarshall/scriptbook-backend/internal/config"
)

var (
	apiURL   string
	logFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "scriptbook",
	Short: "Browse and edit the script catalog",
	Long: `scriptbook opens a full-screen editor over the script catalog API.

The API base URL comes from --api-url, SCRIPTBOOK_API_URL or client.api_url
in the config file, in that order.`,
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClient,
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "API base URL (overrides SCRIPTBOOK_API_URL)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scriptbook:", err)
		os.Exit(1)
	}
}

func runClient(cmd *cobra.Command, _ []string) error {
	if apiURL != "" {
		os.Setenv("SCRIPTBOOK_API_URL", apiURL)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := app.NewLoggerTo(out, cfg.Log)
	logger.Info("starting client", "api_url", cfg.Client.APIURL, "version", app.BuildVersion())

	api := apiclient.New(cfg.Client.APIURL, logger)

	p := tea.NewProgram(tui.New(api, logger), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
