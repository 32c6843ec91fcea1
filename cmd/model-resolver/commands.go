package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"model-resolver/internal/analyze"
	"model-resolver/internal/config"
	"model-resolver/internal/export"
	"model-resolver/internal/introspect"
	"model-resolver/internal/resolve"
	"model-resolver/internal/schema"
)

// resolveFlags are shared by every command that runs a resolution.
func resolveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML configuration file",
			EnvVars: []string{"MODELRES_CONFIG"},
		},
		&cli.StringSliceFlag{
			Name:    "package",
			Aliases: []string{"p"},
			Usage:   "Go package pattern to load (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "type to resolve, as Name or path/to/pkg.Name (default: every struct)",
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "number of root types resolved at once",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "recursion depth that counts as a runaway walk",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "panic on a runaway walk instead of reporting it",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "log resolver counters when done",
		},
	}
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Resolve types and write the Swagger definitions document",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format (yaml, json)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output path, - for stdout",
			},
		}, resolveFlags()...),
		Action: func(cctx *cli.Context) error {
			cfg, reg, err := run(cctx)
			if err != nil {
				return err
			}

			doc := export.Document(reg, export.Info{Title: cfg.Output.Title, Version: cfg.Output.Version})
			if cfg.Output.Path == "" || cfg.Output.Path == "-" {
				return export.Encode(cctx.App.Writer, doc, cfg.Output.Format)
			}

			if err := export.WriteFile(doc, cfg.Output.Format, cfg.Output.Path); err != nil {
				return err
			}

			slog.Info("definitions written", "path", cfg.Output.Path, "definitions", reg.Len())

			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print every resolved definition",
		Flags: resolveFlags(),
		Action: func(cctx *cli.Context) error {
			_, reg, err := run(cctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tPARENT\tPROPERTIES")

			for _, def := range reg.Definitions() {
				switch d := def.(type) {
				case *schema.Model:
					fmt.Fprintf(w, "%s\tmodel\t-\t%s\n", d.Name, strings.Join(d.Properties.Names(), ","))
				case *schema.Composed:
					fmt.Fprintf(w, "%s\tcomposed\t%s\t%s\n", d.Name, d.Parent, strings.Join(d.Child.Properties.Names(), ","))
				}
			}

			return w.Flush()
		},
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Print the raw registry for debugging",
		Flags: resolveFlags(),
		Action: func(cctx *cli.Context) error {
			_, reg, err := run(cctx)
			if err != nil {
				return err
			}

			cs := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				SortKeys:                true,
			}
			cs.Fdump(cctx.App.Writer, reg.Definitions())

			diags := reg.Diagnostics()
			if diags.Len() > 0 {
				cs.Fdump(cctx.App.Writer, diags)
			}

			return nil
		},
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a default configuration file",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "package",
				Aliases: []string{"p"},
				Usage:   "Go package pattern to load (can be specified multiple times)",
			},
		},
		Action: func(cctx *cli.Context) error {
			path := cctx.Args().First()
			if path == "" {
				return errors.New("init requires a path")
			}

			f := config.Default()
			f.Packages = cctx.StringSlice("package")
			f.Output.Path = "swagger.yaml"

			return config.WriteFile(f, path)
		},
	}
}

func scalarsCommand() *cli.Command {
	return &cli.Command{
		Name:  "scalars",
		Usage: "Print the scalar table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"MODELRES_CONFIG"},
			},
		},
		Action: func(cctx *cli.Context) error {
			cfg, err := loadConfig(cctx)
			if err != nil {
				return err
			}

			mapper := cfg.ResolverConfig().Scalars

			w := tabwriter.NewWriter(cctx.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tFORMAT")

			for _, name := range mapper.Names() {
				e, _ := mapper.Entry(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, e.Type, e.Format)
			}

			return w.Flush()
		},
	}
}

// loadConfig reads --config when given and lets flags override it.
func loadConfig(cctx *cli.Context) (*config.File, error) {
	f := config.Default()

	if path := cctx.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		f = loaded
	}

	if v := cctx.StringSlice("package"); len(v) > 0 {
		f.Packages = v
	}

	if v := cctx.StringSlice("root"); len(v) > 0 {
		f.Roots = v
	}

	if v := cctx.Int("concurrency"); v > 0 {
		f.Resolver.Concurrency = v
	}

	if v := cctx.Int("max-depth"); v > 0 {
		f.Resolver.MaxDepth = v
	}

	if cctx.Bool("debug") {
		f.Resolver.Debug = true
	}

	if v := cctx.String("format"); v != "" {
		f.Output.Format = v
	}

	if v := cctx.String("out"); v != "" {
		f.Output.Path = v
	}

	return f, nil
}

// run loads the configured packages and resolves the configured roots.
func run(cctx *cli.Context) (*config.File, *schema.Registry, error) {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return nil, nil, err
	}

	diags := config.Validate(cfg)
	for _, w := range diags.Warnings {
		slog.Warn("config", "diagnostic", w.String())
	}

	if err := diags.Error(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(cfg.Packages...)
	if err != nil {
		return nil, nil, err
	}

	provider := analyze.NewProvider(graph)

	roots, err := selectRoots(provider, cfg.Roots)
	if err != nil {
		return nil, nil, err
	}

	reg := schema.NewRegistry()
	for _, w := range provider.Diagnostics().Warnings {
		reg.Warn(w.Code, w.Message, w.Schema, w.Property)
	}

	session := resolve.NewSession(resolve.NewResolver(provider, cfg.ResolverConfig()), reg)
	if _, err := session.ResolveAll(cctx.Context, roots); err != nil {
		return nil, nil, err
	}

	res := reg.Diagnostics()
	for _, w := range res.Warnings {
		slog.Warn("resolve", "diagnostic", w.String())
	}

	for _, i := range res.Infos {
		slog.Debug("resolve", "diagnostic", i.String())
	}

	if cctx.Bool("stats") {
		logCounters()
	}

	if err := res.Error(); err != nil {
		return nil, nil, fmt.Errorf("resolution failed: %w", err)
	}

	return cfg, reg, nil
}

func selectRoots(provider *analyze.Provider, names []string) ([]introspect.TypeRef, error) {
	if len(names) == 0 {
		return provider.Roots(), nil
	}

	roots := make([]introspect.TypeRef, 0, len(names))
	for _, name := range names {
		r, err := provider.Root(name)
		if err != nil {
			return nil, err
		}

		roots = append(roots, r)
	}

	return roots, nil
}

// logCounters reports the resolver's prometheus counters.
func logCounters() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		slog.Warn("failed to gather metrics", "err", err)
		return
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "modelres_") {
			continue
		}

		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}

			slog.Info("stats", attrs...)
		}
	}
}
