// Package main is the entry point for the metroart CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/handiism/metroart/internal/browse"
	"github.com/handiism/metroart/internal/config"
	"github.com/handiism/metroart/internal/http"
	"github.com/handiism/metroart/internal/met"
)

// app holds what every subcommand needs, built once before the command runs.
type app struct {
	settings *config.Settings
	logger   zerolog.Logger
	client   *http.Client
	api      *met.API
	out      io.Writer
	verbose  bool
	closer   io.Closer
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "metroart",
	Short: "Browse the Metropolitan Museum of Art collection",
	Long: `metroart lists artworks of the Metropolitan Museum of Art open access
collection by department, artist nationality or artist name, and shows the
details of single objects. For the interactive browser, use metroart-tui.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./metroart.json or <user config dir>/metroart/metroart.json)")
	rootCmd.PersistentFlags().Int("page", 1, "result page to print")
	rootCmd.PersistentFlags().Bool("verbose", false, "show verbose output")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		settings.LogLevel = zerolog.DebugLevel.String()
	}

	logger, closer, err := settings.NewLogger(os.Stderr)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}

	opts := settings.ToClientOptions()
	opts.Logger = logger
	client := http.NewClient(opts)

	current = &app{
		settings: settings,
		logger:   logger,
		client:   client,
		api:      met.NewAPI(client, settings.ToCacheOptions()),
		out:      cmd.OutOrStdout(),
		verbose:  verbose,
		closer:   closer,
	}
	return nil
}

func teardown(*cobra.Command, []string) error {
	if current == nil {
		return nil
	}
	_ = current.client.Close()
	return current.closer.Close()
}

// browser creates a Browser that prints notices to stderr.
func (a *app) browser() *browse.Browser {
	return browse.NewBrowser(a.settings, a.api, func(event browse.ProgressEvent) {
		if event.Level == browse.LevelVerbose && !a.verbose {
			return
		}
		fmt.Fprintln(os.Stderr, progressPrefix(event.Level)+event.Message)
	})
}

func progressPrefix(level browse.ProgressLevel) string {
	switch level {
	case browse.LevelError:
		return "✗ "
	case browse.LevelWarning:
		return "! "
	case browse.LevelSuccess:
		return "✓ "
	case browse.LevelInfo:
		return "› "
	}
	return "  "
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(130)
		}
		os.Exit(1)
	}
}
