package classify

import (
	"context"
	"log/slog"
	"strings"

	"bindery/internal/logging"
)

// Prompter asks the user for a genre. The second return value is false when
// the user dismissed the prompt without answering.
type Prompter interface {
	AskGenre(ctx context.Context, title string) (string, bool, error)
}

// FallbackClassifier is the last strategy in the cascade. In automated mode it
// always answers with the unsorted folder name; in interactive mode it defers
// to the user. unsortedDir is the configured destination for unplaceable
// books, so the recorded genre and the folder on disk stay in sync.
type FallbackClassifier struct {
	mode     Mode
	unsorted string
	prompter Prompter
	logger   *slog.Logger
}

func NewFallbackClassifier(mode Mode, unsortedDir string, prompter Prompter, logger *slog.Logger) *FallbackClassifier {
	if strings.TrimSpace(unsortedDir) == "" {
		unsortedDir = Unsorted
	}
	return &FallbackClassifier{
		mode:     mode,
		unsorted: unsortedDir,
		prompter: prompter,
		logger:   logging.NewComponentLogger(logger, "classify.fallback"),
	}
}

func (f *FallbackClassifier) Name() string { return "fallback" }

func (f *FallbackClassifier) Classify(ctx context.Context, candidate Candidate) (string, error) {
	if f.mode != ModeInteractive || f.prompter == nil {
		return f.unsorted, nil
	}

	answer, answered, err := f.prompter.AskGenre(ctx, candidate.Title)
	if err != nil {
		return "", err
	}
	if !answered {
		f.logger.Debug("prompt dismissed", logging.String("file", candidate.Filename))
		return "", ErrNoAnswer
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrNoAnswer
	}
	if strings.EqualFold(answer, Skip) {
		return f.unsorted, nil
	}
	return answer, nil
}
