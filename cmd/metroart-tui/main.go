package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/handiism/metroart/internal/config"
	"github.com/handiism/metroart/internal/http"
	"github.com/handiism/metroart/internal/met"
	"github.com/handiism/metroart/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs only go to log_file.
	logger, closer, err := settings.NewLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	opts := settings.ToClientOptions()
	opts.Logger = logger
	client := http.NewClient(opts)
	defer client.Close()

	api := met.NewAPI(client, settings.ToCacheOptions())

	if err := tui.Run(settings, api, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
