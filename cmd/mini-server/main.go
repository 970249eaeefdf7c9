// Command mini-server serves the files of a directory over HTTP.
//
// The listen port defaults to 3000 and can be overridden with the PORT
// environment variable. The document root defaults to the current working
// directory; -root and an optional -config TOML file override it.
package main

import (
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"

	"github.com/jlabath/mini-server/internal/config"
	"github.com/jlabath/mini-server/internal/contenttype"
	"github.com/jlabath/mini-server/internal/web"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	root := flag.String("root", "", "Directory to serve (overrides config)")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))

	cfg := config.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fatal(err)
		}
	}
	if *root != "" {
		cfg.Root = *root
	}
	cfg.ApplyEnv(logger)

	types := contenttype.NewTable()
	if cfg.TypesFile != "" {
		if err := types.LoadOverridesFile(cfg.TypesFile); err != nil {
			fatal(err)
		}
	}

	color.Green("starting server on %s", cfg.Addr())
	color.White("You can use the %s environment variable to change this.", config.PortVar)

	srv := web.New(cfg, types, logger)
	if err := srv.ListenAndServe(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "server error: %v\n", err)
	os.Exit(1)
}
