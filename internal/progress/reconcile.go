package progress

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bindery/internal/logging"
	"bindery/internal/scanner"
)

// Reconcile derives prior progress from an already-organized library. Every
// subfolder of root that is not hidden, not a system folder, and not the
// unsorted folder is treated as a genre folder; ebooks directly inside it are
// marked processed with genre = folder name. The unsorted folder is scanned
// separately with the unsorted sentinel. Returns the number of files marked.
func Reconcile(ctx context.Context, store *Store, root, unsortedDir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	root = filepath.Clean(root)
	now := time.Now().UTC()
	marked := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if scanner.IsSystemFolder(d.Name()) {
				return filepath.SkipDir
			}
			if d.Name() == unsortedDir && filepath.Dir(path) == root {
				return filepath.SkipDir
			}
			return nil
		}
		parent := filepath.Dir(path)
		if parent == root {
			// Root-level files are unclassified; they belong to the next run.
			return nil
		}
		if !scanner.IsEbookPath(d.Name()) {
			return nil
		}
		if err := store.MarkProcessed(ctx, Record{
			Path:        path,
			Filename:    d.Name(),
			Genre:       filepath.Base(parent),
			ProcessedAt: now,
		}); err != nil {
			return err
		}
		marked++
		return nil
	})
	if err != nil {
		return marked, err
	}

	unsortedMarked, err := reconcileUnsorted(ctx, store, filepath.Join(root, unsortedDir), unsortedDir, now)
	marked += unsortedMarked
	if err != nil {
		return marked, err
	}

	logger.Info("reconciled existing library layout",
		logging.Int("files_marked", marked),
		logging.String("library", root),
	)
	return marked, nil
}

func reconcileUnsorted(ctx context.Context, store *Store, unsortedPath, unsortedGenre string, now time.Time) (int, error) {
	if _, err := os.Stat(unsortedPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	marked := 0
	err := filepath.WalkDir(unsortedPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !scanner.IsEbookPath(d.Name()) {
			return nil
		}
		if err := store.MarkProcessed(ctx, Record{
			Path:        path,
			Filename:    d.Name(),
			Genre:       unsortedGenre,
			ProcessedAt: now,
		}); err != nil {
			return err
		}
		marked++
		return nil
	})
	return marked, err
}
