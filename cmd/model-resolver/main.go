// Package main provides the CLI entrypoint for model-resolver.
//
// model-resolver loads Go packages, resolves their types into a registry
// of named schemas and writes the result as a Swagger 2.0 document:
//   - resolve: write the definitions document
//   - list: print every resolved definition
//   - dump: print the raw registry for debugging
//   - init: write a default configuration file
//   - scalars: print the scalar table
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "model-resolver",
		Usage: "Resolve Go types into Swagger model definitions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"MODELRES_LOG_LEVEL"},
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format (text, json)",
				EnvVars: []string{"MODELRES_LOG_FORMAT"},
				Value:   "text",
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, cctx.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			resolveCommand(),
			listCommand(),
			dumpCommand(),
			initCommand(),
			scalarsCommand(),
		},
	}
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}

	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cctx.String("log-format")) == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
