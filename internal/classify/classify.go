package classify

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"bindery/internal/logging"
	"bindery/internal/textutil"
)

// Sentinel genre values shared across the pipeline. They are folder names as
// well as manifest values, so they stay uppercase and filesystem-safe.
const (
	// Uncertain is the oracle's "I don't know" answer; never a folder name.
	Uncertain = "UNCERTAIN"
	// Unsorted marks books no strategy could place.
	Unsorted = "UNSORTED"
	// Undetermined marks books the user declined to classify; the file stays put.
	Undetermined = "UNDETERMINED"
	// Skip is the interactive answer that sends a book to the unsorted folder.
	Skip = "SKIP"
)

// Mode selects how the cascade resolves books no automatic strategy can place.
type Mode int

const (
	ModeAutomated Mode = iota
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "automated"
}

// Candidate is one ebook awaiting classification.
type Candidate struct {
	Path     string
	Filename string
	// Title is the filename cleaned for analysis: extension, bracketed
	// annotations, and leading numeric prefixes stripped.
	Title string
}

// NewCandidate derives a Candidate from an ebook path.
func NewCandidate(path string) Candidate {
	filename := filepath.Base(path)
	return Candidate{
		Path:     path,
		Filename: filename,
		Title:    textutil.CleanTitle(filename),
	}
}

// ErrNoAnswer reports that a strategy ran cleanly but produced no genre.
var ErrNoAnswer = errors.New("no genre determined")

// Classifier is one strategy in the cascade.
type Classifier interface {
	Name() string
	// Classify returns a concrete genre, or ErrNoAnswer when the strategy
	// cannot decide. Any other error is a strategy failure.
	Classify(ctx context.Context, candidate Candidate) (string, error)
}

// Oracle answers free-form prompts. Satisfied by the ollama client.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Cascade runs classifiers in order and takes the first concrete answer.
type Cascade struct {
	strategies []Classifier
	logger     *slog.Logger
}

// NewCascade builds a cascade over the given strategies.
func NewCascade(logger *slog.Logger, strategies ...Classifier) *Cascade {
	return &Cascade{
		strategies: strategies,
		logger:     logging.NewComponentLogger(logger, "classify"),
	}
}

// Result pairs the winning genre with the strategy that produced it.
type Result struct {
	Genre    string
	Strategy string
}

// Classify runs the cascade for one candidate. A strategy error is logged and
// treated as no answer so the next strategy still gets its chance. When every
// strategy is exhausted the genre is Undetermined.
func (c *Cascade) Classify(ctx context.Context, candidate Candidate) (Result, error) {
	for _, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		genre, err := strategy.Classify(ctx, candidate)
		if err != nil {
			if errors.Is(err, ErrNoAnswer) {
				continue
			}
			c.logger.Warn("strategy failed",
				logging.String("strategy", strategy.Name()),
				logging.String("file", candidate.Filename),
				logging.Error(err))
			continue
		}
		genre = strings.TrimSpace(genre)
		if genre == "" {
			continue
		}
		return Result{Genre: genre, Strategy: strategy.Name()}, nil
	}
	return Result{Genre: Undetermined, Strategy: "none"}, nil
}

// normalizeAnswer reduces an oracle response to a single genre line.
func normalizeAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	if idx := strings.IndexByte(answer, '\n'); idx >= 0 {
		answer = strings.TrimSpace(answer[:idx])
	}
	return strings.Trim(answer, `"'`)
}
