package cmd

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/shelfscan/internal/config"
	"github.com/lepinkainen/shelfscan/internal/fileutil"
	"github.com/lepinkainen/shelfscan/internal/omdb"
	"github.com/lepinkainen/shelfscan/internal/pipeline"
	"github.com/lepinkainen/shelfscan/internal/upcitemdb"
	"github.com/spf13/viper"
)

const configFile = "config.yaml"

// CLI represents the complete command line of the shelfscan application
type CLI struct {
	File string `name:"file" placeholder:"PATH" help:"Process barcodes from the first column of a CSV file instead of prompting"`
}

// Runtime carries what a run needs besides its flags.
type Runtime struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("shelfscan"),
		kong.Description("Scan DVD and Blu-ray barcodes into a plain text movie collection."),
		kong.UsageOnError(),
	)

	rt := &Runtime{
		Config: config.Load(),
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	// Failures are reported but never change the exit code.
	if err := ctx.Run(rt); err != nil {
		slog.Error("Command failed", "error", err)
	}
}

func initConfig() {
	config.SetDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := config.BindEnv(); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stdErrors.As(err, &notFound) {
			slog.Error("Could not read config file, using defaults", "error", err)
			return
		}

		slog.Info("Config file not found, writing starter config", "file", configFile)
		if err := config.WriteStarter(configFile); err != nil {
			slog.Error("Error writing config file", "error", err)
		}
	}
}

// Run processes a batch file when --file is given and prompts for
// barcodes otherwise.
func (c *CLI) Run(rt *Runtime) error {
	_, _ = fmt.Fprintln(rt.Out, "--- Movie Barcode Scanner ---")
	_, _ = fmt.Fprintf(rt.Out, "Movie details will be saved to '%s'\n", rt.Config.OutputFile)

	if c.File != "" {
		return runBatch(context.Background(), rt, c.File)
	}
	return runInteractive(context.Background(), rt)
}

func runBatch(ctx context.Context, rt *Runtime, path string) error {
	slog.Info("Batch mode", "file", path)

	src, err := pipeline.OpenBatch(path)
	if err != nil {
		slog.Error("Cannot process batch file", "error", err)
		return nil
	}
	defer func() { _ = src.Close() }()

	p := newPipeline(rt)

	summary, err := p.Run(ctx, src)
	if err != nil {
		return err
	}

	slog.Info("Batch processing complete", "summary", summary)
	return nil
}

func runInteractive(ctx context.Context, rt *Runtime) error {
	_, _ = fmt.Fprintf(rt.Out, "Type '%s' to quit.\n", pipeline.ExitCommand)

	p := newPipeline(rt)

	summary, err := p.Run(ctx, pipeline.NewInteractiveSource(rt.In, rt.Out))
	if err != nil {
		return err
	}

	slog.Info("Application closed", "summary", summary)
	return nil
}

// newPipeline wires both API clients and the collection file. The file is
// created up front so an empty session still leaves it in place; if that
// fails, every save reports its own write error instead.
func newPipeline(rt *Runtime) *pipeline.Pipeline {
	cfg := rt.Config

	sink := fileutil.NewAppender(cfg.OutputFile)
	if err := sink.Ensure(); err != nil {
		slog.Error("Could not create collection file", "error", err)
	}

	resolver := upcitemdb.NewClient(
		upcitemdb.WithAPIKey(cfg.UPCItemDBAPIKey),
		upcitemdb.WithBaseURL(cfg.UPCItemDBBaseURL),
		upcitemdb.WithTimeout(cfg.HTTPTimeout),
	)
	fetcher := omdb.NewClient(cfg.OMDBAPIKey,
		omdb.WithBaseURL(cfg.OMDBBaseURL),
		omdb.WithTimeout(cfg.HTTPTimeout),
	)

	return pipeline.New(resolver, fetcher, sink, pipeline.WithConsole(rt.Out))
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
