package classify

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bindery/internal/logging"
)

// Plain text reads assume roughly this many lines per page.
const linesPerPage = 50

// ContentClassifier samples the opening pages of an ebook and asks the oracle.
// Only plain-text files are readable without format-specific tooling; every
// other extension yields no answer.
type ContentClassifier struct {
	oracle       Oracle
	maxPages     int
	excerptLimit int
	logger       *slog.Logger
}

func NewContentClassifier(oracle Oracle, maxPages, excerptLimit int, logger *slog.Logger) *ContentClassifier {
	return &ContentClassifier{
		oracle:       oracle,
		maxPages:     maxPages,
		excerptLimit: excerptLimit,
		logger:       logging.NewComponentLogger(logger, "classify.content"),
	}
}

func (c *ContentClassifier) Name() string { return "content" }

func (c *ContentClassifier) Classify(ctx context.Context, candidate Candidate) (string, error) {
	excerpt, err := c.extractExcerpt(candidate.Path)
	if err != nil {
		return "", err
	}
	if excerpt == "" {
		return "", ErrNoAnswer
	}
	answer, err := c.oracle.Generate(ctx, contentPrompt(candidate.Filename, excerpt))
	if err != nil {
		return "", err
	}
	genre := normalizeAnswer(answer)
	if genre == "" || genre == Uncertain {
		return "", ErrNoAnswer
	}
	c.logger.Debug("genre from content",
		logging.String("file", candidate.Filename),
		logging.String("genre", genre))
	return genre, nil
}

func (c *ContentClassifier) extractExcerpt(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" {
		c.logger.Debug("content extraction unsupported", logging.String("extension", ext))
		return "", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open ebook: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for len(lines) < c.maxPages*linesPerPage && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read ebook: %w", err)
	}

	excerpt := strings.Join(lines, "\n")
	if len(excerpt) > c.excerptLimit {
		excerpt = excerpt[:c.excerptLimit] + "..."
	}
	return excerpt, nil
}
