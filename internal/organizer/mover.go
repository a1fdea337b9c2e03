package organizer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bindery/internal/logging"
	"bindery/internal/services"
	"bindery/internal/textutil"
)

// Mover places classified ebooks into genre folders under the library root.
type Mover struct {
	libraryDir string
	logger     *slog.Logger
	titleCaser cases.Caser
}

// NewMover constructs a Mover rooted at libraryDir.
func NewMover(libraryDir string, logger *slog.Logger) *Mover {
	return &Mover{
		libraryDir: libraryDir,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		titleCaser: cases.Title(language.Und),
	}
}

// Move relocates sourcePath into the folder for genre and returns the final
// destination. The genre folder is created on demand; name collisions get a
// "(n)" suffix directly before the extension. A failed move leaves the source
// file untouched.
func (m *Mover) Move(sourcePath, genre string) (string, error) {
	folder := m.NormalizeGenre(genre)
	if folder == "" {
		return "", services.Wrap(services.ErrValidation, "organizer", "normalize genre", fmt.Sprintf("Genre %q normalizes to an empty folder name", genre), nil)
	}

	destDir := filepath.Join(m.libraryDir, folder)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrTransient, "organizer", "ensure genre dir", "Failed to create genre directory", err)
	}

	target, err := nextAvailablePath(destDir, filepath.Base(sourcePath))
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "organizer", "allocate filename", "Unable to allocate destination filename", err)
	}

	if err := os.Rename(sourcePath, target); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			return "", services.Wrap(services.ErrConfiguration, "organizer", "move file", "Library spans filesystems; cross-device moves are not supported", err)
		}
		return "", services.Wrap(services.ErrTransient, "organizer", "move file", "Failed to move file into genre directory", err)
	}

	m.logger.Debug("moved",
		logging.String("file", filepath.Base(sourcePath)),
		logging.String("genre", folder))
	return target, nil
}

// NormalizeGenre converts a raw genre answer into a stable folder name:
// filesystem-unsafe characters replaced, whitespace folded, and title casing
// applied so "science fiction" and "Science Fiction" share one folder.
// Uppercase sentinel names pass through unchanged.
func (m *Mover) NormalizeGenre(genre string) string {
	cleaned := textutil.CollapseWhitespace(textutil.SanitizeFileName(genre))
	if cleaned == "" {
		return ""
	}
	if cleaned == strings.ToUpper(cleaned) {
		return cleaned
	}
	return m.titleCaser.String(cleaned)
}

// nextAvailablePath returns dir/filename, appending "(n)" before the
// extension until the name is free.
func nextAvailablePath(dir, filename string) (string, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	candidate := filepath.Join(dir, filename)
	for counter := 1; ; counter++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, counter, ext))
	}
}
