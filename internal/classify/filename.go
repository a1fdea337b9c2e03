package classify

import (
	"context"
	"log/slog"

	"bindery/internal/logging"
)

// FilenameClassifier asks the oracle for a genre using only the cleaned title.
type FilenameClassifier struct {
	oracle Oracle
	logger *slog.Logger
}

func NewFilenameClassifier(oracle Oracle, logger *slog.Logger) *FilenameClassifier {
	return &FilenameClassifier{
		oracle: oracle,
		logger: logging.NewComponentLogger(logger, "classify.filename"),
	}
}

func (f *FilenameClassifier) Name() string { return "filename" }

func (f *FilenameClassifier) Classify(ctx context.Context, candidate Candidate) (string, error) {
	if candidate.Title == "" {
		return "", ErrNoAnswer
	}
	answer, err := f.oracle.Generate(ctx, filenamePrompt(candidate.Title))
	if err != nil {
		return "", err
	}
	genre := normalizeAnswer(answer)
	if genre == "" || genre == Uncertain {
		return "", ErrNoAnswer
	}
	f.logger.Debug("genre from filename",
		logging.String("file", candidate.Filename),
		logging.String("genre", genre))
	return genre, nil
}
