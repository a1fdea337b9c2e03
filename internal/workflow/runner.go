package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"bindery/internal/classify"
	"bindery/internal/config"
	"bindery/internal/logging"
	"bindery/internal/organizer"
	"bindery/internal/progress"
	"bindery/internal/report"
	"bindery/internal/scanner"
	"bindery/internal/services"
)

// Runner drives one organization run: scan, classify, move, record, report.
type Runner struct {
	cfg     *config.Config
	store   *progress.Store
	cascade *classify.Cascade
	mover   *organizer.Mover
	mode    classify.Mode
	logger  *slog.Logger
	runID   string
	lock    *flock.Flock
}

// New assembles a Runner. The run ID is generated here so every log line of
// the run can carry it.
func New(cfg *config.Config, store *progress.Store, cascade *classify.Cascade, mover *organizer.Mover, mode classify.Mode, logger *slog.Logger) *Runner {
	runID := uuid.NewString()[:8]
	base := logging.NewComponentLogger(logger, "workflow").With(logging.String(logging.FieldRunID, runID))
	return &Runner{
		cfg:     cfg,
		store:   store,
		cascade: cascade,
		mover:   mover,
		mode:    mode,
		logger:  base,
		runID:   runID,
		lock:    flock.New(cfg.LockPath()),
	}
}

// RunID returns the identifier for this run.
func (r *Runner) RunID() string { return r.runID }

// Run executes the pipeline. With reconcileFirst set, existing genre folders
// seed the progress database before any classification happens. Cancellation
// stops between files; everything already marked stays marked.
func (r *Runner) Run(ctx context.Context, reconcileFirst bool) (report.Summary, error) {
	summary := report.Summary{RunID: r.runID, Mode: r.mode.String()}

	locked, err := r.lock.TryLock()
	if err != nil {
		return summary, services.Wrap(services.ErrTransient, "workflow", "acquire lock", "Failed to acquire run lock", err)
	}
	if !locked {
		return summary, services.Wrap(services.ErrValidation, "workflow", "acquire lock", "Another run is already organizing this library", nil)
	}
	defer func() {
		if err := r.lock.Unlock(); err != nil {
			r.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	libraryDir := r.cfg.Paths.LibraryDir
	if err := checkLibraryAccess(libraryDir); err != nil {
		return summary, err
	}

	if reconcileFirst {
		marked, err := progress.Reconcile(ctx, r.store, libraryDir, r.cfg.Organizer.UnsortedDir, r.logger)
		if err != nil {
			return summary, fmt.Errorf("reconcile existing library: %w", err)
		}
		r.logger.Info("seeded progress from existing genre folders", logging.Int("files", marked))
	}

	files, err := scanner.Scan(libraryDir, r.logger)
	if err != nil {
		return summary, fmt.Errorf("scan library: %w", err)
	}

	processed, err := r.store.ProcessedSet(ctx)
	if err != nil {
		return summary, fmt.Errorf("load processed set: %w", err)
	}

	pending := make([]string, 0, len(files))
	for _, path := range files {
		if _, done := processed[path]; !done {
			pending = append(pending, path)
		}
	}
	summary.Skipped = len(files) - len(pending)

	r.logger.Info("run started",
		logging.String("mode", r.mode.String()),
		logging.String("library", libraryDir),
		logging.Int("total", len(files)),
		logging.Int("already_processed", summary.Skipped),
		logging.Int("pending", len(pending)))

	interval := r.cfg.Workflow.ProgressInterval
	if interval < 1 {
		interval = 1
	}
	runErr := error(nil)

	for i, path := range pending {
		if err := ctx.Err(); err != nil {
			r.logger.Info("run interrupted", logging.Int("completed", summary.Processed))
			runErr = err
			break
		}

		if i%interval == 0 || i == len(pending)-1 {
			percent := i * 100 / len(pending)
			r.logger.Info("progress",
				logging.Int("percent", percent),
				logging.String("file", filepath.Base(path)),
				logging.Int("position", i+1),
				logging.Int("remaining", len(pending)))
		}

		if err := r.processFile(ctx, path, &summary); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				runErr = err
				break
			}
			summary.Failed++
			r.logger.Warn("file failed; will retry next run",
				logging.String("file", filepath.Base(path)),
				logging.Error(err))
		}
	}

	if err := r.finalize(ctx, &summary); err != nil {
		if runErr == nil {
			runErr = err
		} else {
			r.logger.Warn("finalize failed after interrupted run", logging.Error(err))
		}
	}
	return summary, runErr
}

// processFile classifies and places a single ebook, then records the outcome.
func (r *Runner) processFile(ctx context.Context, path string, summary *report.Summary) error {
	candidate := classify.NewCandidate(path)
	result, err := r.cascade.Classify(ctx, candidate)
	if err != nil {
		return err
	}

	finalPath := path
	genre := result.Genre
	if genre == classify.Undetermined {
		// Interactive dismiss: the file stays put and is never asked about again.
		r.logger.Warn("genre undetermined; leaving file in place",
			logging.String("file", candidate.Filename))
	} else {
		genre = r.mover.NormalizeGenre(genre)
		moved, err := r.mover.Move(path, result.Genre)
		if err != nil {
			return err
		}
		finalPath = moved
		r.logger.Info("classified",
			logging.String("file", candidate.Filename),
			logging.String("genre", genre),
			logging.String("strategy", result.Strategy))
	}

	if err := r.store.MarkProcessed(ctx, progress.Record{
		Path:     finalPath,
		Filename: candidate.Filename,
		Genre:    genre,
	}); err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	summary.Processed++
	return nil
}

// finalize rewrites the manifest and collects genre counts for the summary.
func (r *Runner) finalize(ctx context.Context, summary *report.Summary) error {
	records, err := r.store.Records(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	if err := report.WriteManifest(r.cfg.Paths.CSVPath, records); err != nil {
		return err
	}
	summary.ManifestPath = r.cfg.Paths.CSVPath

	counts, err := r.store.GenreCounts(ctx)
	if err != nil {
		return fmt.Errorf("load genre counts: %w", err)
	}
	summary.GenreCounts = counts

	r.logger.Info("run finished",
		logging.Int("processed", summary.Processed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.String("manifest", summary.ManifestPath))
	return nil
}

// checkLibraryAccess verifies the library root exists and is fully accessible
// before any file is touched.
func checkLibraryAccess(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return services.Wrap(services.ErrConfiguration, "workflow", "preflight", fmt.Sprintf("Library directory %s does not exist", path), err)
		}
		return services.Wrap(services.ErrTransient, "workflow", "preflight", "Failed to stat library directory", err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrConfiguration, "workflow", "preflight", fmt.Sprintf("Library path %s is not a directory", path), nil)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return services.Wrap(services.ErrConfiguration, "workflow", "preflight", fmt.Sprintf("Insufficient permissions on library directory %s", path), err)
	}
	return nil
}
