package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/lepinkainen/shelfscan/internal/errors"
	"github.com/lepinkainen/shelfscan/internal/movie"
	"github.com/lepinkainen/shelfscan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolveResult struct {
	id  movie.Identifier
	err error
}

type fakeResolver struct {
	results map[string]resolveResult
	calls   []string
}

func (f *fakeResolver) Resolve(_ context.Context, code string) (movie.Identifier, error) {
	f.calls = append(f.calls, code)
	r, ok := f.results[code]
	if !ok {
		return movie.Identifier{}, errors.NewNotFoundError("no product listed for this barcode")
	}
	return r.id, r.err
}

type fakeFetcher struct {
	record *movie.Record
	err    error
	calls  []movie.Identifier
}

func (f *fakeFetcher) Fetch(_ context.Context, id movie.Identifier) (*movie.Record, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return nil, f.err
	}
	record := *f.record
	return &record, nil
}

type memorySink struct {
	blocks []string
	err    error
}

func (s *memorySink) Append(block string) error {
	if s.err != nil {
		return s.err
	}
	s.blocks = append(s.blocks, block)
	return nil
}

func (s *memorySink) Path() string {
	return "memory"
}

type sliceSource struct {
	items []string
}

func (s *sliceSource) Next() (string, bool, error) {
	if len(s.items) == 0 {
		return "", false, nil
	}
	next := s.items[0]
	s.items = s.items[1:]
	return next, true, nil
}

type harness struct {
	pipeline *Pipeline
	resolver *fakeResolver
	fetcher  *fakeFetcher
	sink     *memorySink
	logs     *bytes.Buffer
	console  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		resolver: &fakeResolver{results: map[string]resolveResult{}},
		fetcher:  &fakeFetcher{record: &movie.Record{Title: "Example", Year: "1999"}},
		sink:     &memorySink{},
		logs:     &bytes.Buffer{},
		console:  &bytes.Buffer{},
	}
	logger := slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h.pipeline = New(h.resolver, h.fetcher, h.sink, WithConsole(h.console), WithLogger(logger))
	return h
}

func TestProcessSaved(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["012345678905"] = resolveResult{id: movie.ByExternalID("tt0000001")}

	outcome := h.pipeline.Process(context.Background(), "012345678905")

	assert.Equal(t, OutcomeSaved, outcome)
	require.Len(t, h.sink.blocks, 1)
	assert.Contains(t, h.sink.blocks[0], "Title: Example (1999)")
	assert.Equal(t, []movie.Identifier{movie.ByExternalID("tt0000001")}, h.fetcher.calls)
	assert.Contains(t, h.console.String(), "--- Found Movie ---")
	assert.Contains(t, h.logs.String(), "Saved movie")
}

func TestProcessResolverFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: errors.NewNotFoundError("no product listed for this barcode")},
		{name: "network", err: errors.NewNetworkError("UPCitemdb", context.DeadlineExceeded)},
		{name: "parse", err: errors.NewParseError("UPCitemdb", context.Canceled)},
		{name: "rate limit", err: errors.NewRateLimitError("UPCitemdb", "TOO_FAST")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.resolver.results["1"] = resolveResult{err: tt.err}

			outcome := h.pipeline.Process(context.Background(), "1")

			assert.Equal(t, OutcomeNotFound, outcome)
			assert.Empty(t, h.fetcher.calls, "fetch must not run without an identifier")
			assert.Empty(t, h.sink.blocks)
			assert.Contains(t, h.logs.String(), "Could not find a movie for that barcode")
		})
	}
}

func TestProcessConfigError(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["1"] = resolveResult{id: movie.ByTitle("Example")}
	h.fetcher.err = errors.NewConfigurationError("omdb.api_key", "OMDb API key is missing")

	outcome := h.pipeline.Process(context.Background(), "1")

	assert.Equal(t, OutcomeConfigError, outcome)
	assert.Empty(t, h.sink.blocks)
	assert.Contains(t, h.logs.String(), "Configuration error")
}

func TestProcessFetchNotFound(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["1"] = resolveResult{id: movie.ByTitle("Nope")}
	h.fetcher.err = errors.NewNotFoundError("Movie not found!")

	outcome := h.pipeline.Process(context.Background(), "1")

	assert.Equal(t, OutcomeNotFound, outcome)
	assert.Empty(t, h.sink.blocks)
	assert.Contains(t, h.logs.String(), "Movie not found!")
}

func TestProcessWriteFailure(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["1"] = resolveResult{id: movie.ByTitle("Example")}
	h.sink.err = errors.NewWriteError("movies.txt", context.Canceled)

	outcome := h.pipeline.Process(context.Background(), "1")

	assert.Equal(t, OutcomeWriteFailed, outcome)
	assert.Contains(t, h.logs.String(), "Could not write to file")
}

func TestRunValidationSkipsPipeline(t *testing.T) {
	h := newHarness(t)

	summary, err := h.pipeline.Run(context.Background(), &sliceSource{items: []string{"12a4", "", "  "}})
	require.NoError(t, err)

	assert.Empty(t, h.resolver.calls)
	assert.Equal(t, 3, summary.Invalid)
	assert.Equal(t, 3, summary.Total())
	assert.Contains(t, h.logs.String(), "Invalid barcode, skipping")
}

func TestRunContinuesAfterFailures(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["1"] = resolveResult{id: movie.ByTitle("Example")}
	h.resolver.results["3"] = resolveResult{id: movie.ByTitle("Example")}

	summary, err := h.pipeline.Run(context.Background(), &sliceSource{items: []string{"1", "2", "x", " 3 "}})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, h.resolver.calls)
	assert.Equal(t, Summary{Saved: 2, Invalid: 1, NotFound: 1}, summary)
	assert.Len(t, h.sink.blocks, 2)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.pipeline.Run(ctx, &sliceSource{items: []string{"1"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.resolver.calls)
}

func TestRunInteractive(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["123"] = resolveResult{id: movie.ByTitle("Example")}

	input := strings.NewReader("123\nabc\n  EXIT  \n456\n")
	summary, err := h.pipeline.Run(context.Background(), NewInteractiveSource(input, h.console))
	require.NoError(t, err)

	assert.Equal(t, []string{"123"}, h.resolver.calls, "input after exit is never read")
	assert.Equal(t, Summary{Saved: 1, Invalid: 1}, summary)
	assert.Equal(t, 3, strings.Count(h.console.String(), "Enter barcode (or 'exit'): "))
}

func TestRunInteractiveLongLineDoesNotEndSession(t *testing.T) {
	h := newHarness(t)
	h.resolver.results["012345678905"] = resolveResult{id: movie.ByExternalID("tt0000001")}

	input := strings.NewReader(strings.Repeat("x", 70000) + "\n012345678905\nexit\n")
	summary, err := h.pipeline.Run(context.Background(), NewInteractiveSource(input, h.console))
	require.NoError(t, err)

	assert.Equal(t, Summary{Saved: 1, Invalid: 1}, summary)
	assert.Equal(t, []string{"012345678905"}, h.resolver.calls)
}

func TestRunBatchScenario(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteCSV("codes.csv", [][]string{{"881234567890"}, {"not-a-barcode"}, {"881234567891"}})

	h := newHarness(t)
	h.resolver.results["881234567890"] = resolveResult{err: errors.NewNetworkError("UPCitemdb", context.DeadlineExceeded)}
	h.resolver.results["881234567891"] = resolveResult{id: movie.ByExternalID("tt0000002")}

	src, err := OpenBatch(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	summary, err := h.pipeline.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"881234567890", "881234567891"}, h.resolver.calls)
	assert.Equal(t, Summary{Saved: 1, Invalid: 1, NotFound: 1}, summary)
	assert.Contains(t, h.logs.String(), "not-a-barcode")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "saved", OutcomeSaved.String())
	assert.Equal(t, "configuration error", OutcomeConfigError.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestSummaryLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("done", "summary", Summary{Saved: 2, NotFound: 1})

	assert.Contains(t, buf.String(), "summary.total=3")
	assert.Contains(t, buf.String(), "summary.saved=2")
	assert.Contains(t, buf.String(), "summary.not_found=1")
}
