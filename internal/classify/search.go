package classify

import (
	"context"
	"log/slog"
	"strings"

	"bindery/internal/logging"
)

// Searcher fetches web snippets for a book title. Satisfied by the websearch client.
type Searcher interface {
	SearchBookGenre(ctx context.Context, title string) ([]string, error)
}

// SearchClassifier feeds web search result titles to the oracle.
type SearchClassifier struct {
	searcher Searcher
	oracle   Oracle
	logger   *slog.Logger
}

func NewSearchClassifier(searcher Searcher, oracle Oracle, logger *slog.Logger) *SearchClassifier {
	return &SearchClassifier{
		searcher: searcher,
		oracle:   oracle,
		logger:   logging.NewComponentLogger(logger, "classify.search"),
	}
}

func (s *SearchClassifier) Name() string { return "search" }

func (s *SearchClassifier) Classify(ctx context.Context, candidate Candidate) (string, error) {
	if candidate.Title == "" {
		return "", ErrNoAnswer
	}
	snippets, err := s.searcher.SearchBookGenre(ctx, candidate.Title)
	if err != nil {
		return "", err
	}
	if len(snippets) == 0 {
		return "", ErrNoAnswer
	}
	answer, err := s.oracle.Generate(ctx, searchPrompt(candidate.Title, strings.Join(snippets, "\n")))
	if err != nil {
		return "", err
	}
	genre := normalizeAnswer(answer)
	if genre == "" || genre == Uncertain {
		return "", ErrNoAnswer
	}
	s.logger.Debug("genre from search",
		logging.String("file", candidate.Filename),
		logging.String("genre", genre))
	return genre, nil
}
