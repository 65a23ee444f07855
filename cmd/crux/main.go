// Package main provides the crux binary entry point.
// Crux extracts the public shared-type surface of a core library from its
// compiler-emitted symbol graph and generates Go bindings for it.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/mre/crux/internal/common"
	"github.com/mre/crux/internal/config"
	"github.com/mre/crux/internal/extract"
	"github.com/mre/crux/internal/gen"
	"github.com/mre/crux/internal/rustdoc"
	"github.com/mre/crux/internal/symbolgraph"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "crux"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	configPath string
	jsonPath   string
	manifest   string
	lib        string
	out        string
	pkg        string
	logLevel   string
	verbose    bool
	dump       bool
	skipGen    bool
}

func rootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "crux",
		Short: "Shared-type extractor and binding generator",
		Long: `Crux builds the symbol graph of a core library, walks its public
surface starting from marker-trait implementations, and prints every
publicly reachable data-shape item. Along the way it collects a portable
type model and generates Go bindings from it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Run manifest path (YAML)")
	cmd.Flags().StringVar(&flags.jsonPath, "json", "", "Pre-built symbol graph JSON (skips the build step)")
	cmd.Flags().StringVar(&flags.manifest, "manifest", "", "Library Cargo.toml path")
	cmd.Flags().StringVar(&flags.lib, "lib", "", "Library target name")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output directory for generated bindings")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "Package name for generated bindings")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print diagnostics and missing Ids")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "Dump the collected type model to stderr")
	cmd.Flags().BoolVar(&flags.skipGen, "no-gen", false, "Skip binding generation, only print the public surface")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(cmd *cobra.Command, flags cliFlags) error {
	setupLogging(flags.logLevel)

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var crate *symbolgraph.Crate
	if flags.jsonPath != "" {
		crate, err = rustdoc.Load(flags.jsonPath)
	} else {
		crate, err = rustdoc.Produce(ctx, rustdoc.Command{
			Manifest: cfg.Manifest,
			Lib:      cfg.Lib,
		})
	}

	if err != nil {
		return err
	}

	result, err := extract.Extract(crate, extract.Options{Markers: cfg.ExtractMarkers()})
	if err != nil {
		return err
	}

	for _, item := range result.API.Items() {
		fmt.Println(item)
	}

	if flags.verbose {
		printDetails(result)
	}

	if flags.dump {
		spew.Fdump(os.Stderr, result.Model)
	}

	if flags.skipGen {
		return nil
	}

	return generate(result, cfg)
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo

	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig merges the run manifest with flag overrides. Flags win.
func loadConfig(flags cliFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Parse(nil)
	}

	if err != nil {
		return nil, err
	}

	if flags.manifest != "" {
		cfg.Manifest = flags.manifest
	}

	if flags.lib != "" {
		cfg.Lib = flags.lib
	}

	if flags.out != "" {
		cfg.Out = flags.out
	}

	if flags.pkg != "" {
		cfg.Package = flags.pkg
	}

	if flags.jsonPath == "" && (cfg.Manifest == "" || cfg.Lib == "") {
		return nil, fmt.Errorf("either --json or a manifest and lib target must be given")
	}

	return cfg, nil
}

func printDetails(result *extract.Result) {
	for _, root := range result.Roots {
		fmt.Fprintf(os.Stderr, "root: %s via %s\n", root.Target, root.Slot)
	}

	var shared []symbolgraph.ID
	for id, items := range result.IDToItems {
		if common.IsMultiple(items) {
			shared = append(shared, id)
		}
	}

	sort.Slice(shared, func(i, j int) bool { return shared[i] < shared[j] })

	for _, id := range shared {
		fmt.Fprintf(os.Stderr, "re-exported: %s (%d paths)\n", id, len(result.IDToItems[id]))
	}

	for _, id := range result.API.MissingIDs() {
		fmt.Fprintf(os.Stderr, "missing: %s\n", id)
	}

	fmt.Fprint(os.Stderr, result.Diagnostics.String())
}

func generate(result *extract.Result, cfg *config.Config) error {
	generator := gen.NewGenerator(gen.GeneratorConfig{
		PackageName: cfg.Package,
		OutputDir:   cfg.Out,
	})

	files, err := generator.Generate(result.Model)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, cfg.Out); err != nil {
		return err
	}

	slog.Info("bindings written", "dir", cfg.Out, "files", len(files))

	return nil
}
