package pipeline

import "log/slog"

// Outcome is the result of processing one piece of input.
type Outcome int

const (
	// OutcomeSaved means a block was appended to the collection file.
	OutcomeSaved Outcome = iota
	// OutcomeInvalid means the input was not a barcode; nothing was looked up.
	OutcomeInvalid
	// OutcomeNotFound covers every lookup failure except configuration.
	OutcomeNotFound
	// OutcomeConfigError means the metadata key is missing or rejected.
	OutcomeConfigError
	// OutcomeWriteFailed means the movie was found but could not be saved.
	OutcomeWriteFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNotFound:
		return "not found"
	case OutcomeConfigError:
		return "configuration error"
	case OutcomeWriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// Summary counts outcomes over one run.
type Summary struct {
	Saved        int
	Invalid      int
	NotFound     int
	ConfigErrors int
	WriteFailed  int
}

// Add records one outcome.
func (s *Summary) Add(o Outcome) {
	switch o {
	case OutcomeSaved:
		s.Saved++
	case OutcomeInvalid:
		s.Invalid++
	case OutcomeNotFound:
		s.NotFound++
	case OutcomeConfigError:
		s.ConfigErrors++
	case OutcomeWriteFailed:
		s.WriteFailed++
	}
}

// Total is the number of inputs seen, valid or not.
func (s Summary) Total() int {
	return s.Saved + s.Invalid + s.NotFound + s.ConfigErrors + s.WriteFailed
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("total", s.Total()),
		slog.Int("saved", s.Saved),
		slog.Int("invalid", s.Invalid),
		slog.Int("not_found", s.NotFound),
		slog.Int("config_errors", s.ConfigErrors),
		slog.Int("write_failed", s.WriteFailed),
	)
}
