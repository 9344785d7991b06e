// Package pipeline runs barcodes through lookup, metadata fetch, formatting
// and the collection file, one at a time.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lepinkainen/shelfscan/internal/barcode"
	"github.com/lepinkainen/shelfscan/internal/content"
	"github.com/lepinkainen/shelfscan/internal/errors"
	"github.com/lepinkainen/shelfscan/internal/movie"
)

// Resolver turns a barcode into a movie identifier.
type Resolver interface {
	Resolve(ctx context.Context, barcode string) (movie.Identifier, error)
}

// Fetcher loads metadata for a movie identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id movie.Identifier) (*movie.Record, error)
}

// Sink stores formatted blocks.
type Sink interface {
	Append(block string) error
	Path() string
}

// Pipeline processes barcodes strictly sequentially.
type Pipeline struct {
	resolver Resolver
	fetcher  Fetcher
	sink     Sink
	console  io.Writer
	logger   *slog.Logger
}

// Option is a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithConsole sets where prompts and found-movie panels are printed.
func WithConsole(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.console = w
		}
	}
}

// WithLogger sets the logger used for operator reports.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Pipeline. Console output defaults to stdout and reports go
// to slog.Default().
func New(resolver Resolver, fetcher Fetcher, sink Sink, opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver: resolver,
		fetcher:  fetcher,
		sink:     sink,
		console:  os.Stdout,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run pulls raw input from src until it is exhausted, validating each
// entry and processing the valid ones. Per-barcode failures are reported
// and never stop the run; only a failing source or a cancelled context does.
func (p *Pipeline) Run(ctx context.Context, src Source) (Summary, error) {
	var summary Summary

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		raw, ok, err := src.Next()
		if err != nil {
			return summary, err
		}
		if !ok {
			return summary, nil
		}

		code, err := barcode.Parse(raw)
		if err != nil {
			p.logger.Warn("Invalid barcode, skipping", "input", raw, "error", err)
			summary.Add(OutcomeInvalid)
			continue
		}

		summary.Add(p.Process(ctx, code))
	}
}

// Process runs one validated barcode through the whole pipeline.
func (p *Pipeline) Process(ctx context.Context, code string) Outcome {
	id, err := p.resolver.Resolve(ctx, code)
	if err != nil {
		p.report(err)
		p.logger.Warn("Could not find a movie for that barcode", "barcode", code)
		return OutcomeNotFound
	}
	p.logger.Info("Barcode resolved", "barcode", code, "match", id.String())

	record, err := p.fetcher.Fetch(ctx, id)
	if err != nil {
		p.report(err)
		if errors.IsConfigurationError(err) {
			return OutcomeConfigError
		}
		p.logger.Warn("Could not find movie details", "barcode", code, "match", id.String())
		return OutcomeNotFound
	}

	_, _ = fmt.Fprintln(p.console, content.RenderPanel(*record))

	if err := p.sink.Append(content.FormatRecord(*record)); err != nil {
		p.report(err)
		return OutcomeWriteFailed
	}

	p.logger.Info("Saved movie", "title", movie.OrPlaceholder(record.Title), "file", p.sink.Path())
	return OutcomeSaved
}

// report converts an error into an operator-visible message by kind.
func (p *Pipeline) report(err error) {
	switch {
	case errors.IsConfigurationError(err):
		p.logger.Error("Configuration error", "error", err)
	case errors.IsRateLimitError(err):
		p.logger.Warn("Request limit reached", "error", err)
	case errors.IsNetworkError(err):
		p.logger.Error("Network error", "error", err)
	case errors.IsParseError(err):
		p.logger.Error("Malformed response", "error", err)
	case errors.IsWriteError(err):
		p.logger.Error("Could not write to file", "error", err)
	case errors.IsNotFoundError(err):
		p.logger.Warn("Lookup returned no result", "reason", err)
	default:
		p.logger.Error("Unexpected error", "error", err)
	}
}
