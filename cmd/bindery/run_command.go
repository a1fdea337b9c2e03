package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"bindery/internal/classify"
	"bindery/internal/config"
	"bindery/internal/logging"
	"bindery/internal/organizer"
	"bindery/internal/progress"
	"bindery/internal/prompter"
	"bindery/internal/report"
	"bindery/internal/services/ollama"
	"bindery/internal/websearch"
	"bindery/internal/workflow"
)

// errQuit signals that the user chose to quit at the mode menu.
var errQuit = errors.New("quit")

func newRunCommand(ctx *commandContext) *cobra.Command {
	var autoFlag bool
	var interactiveFlag bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Classify and organize the ebook library",
		Long: `Scan the library for unprocessed ebooks, determine each book's genre
through filename analysis, content sampling, and web search, then move it
into the matching genre folder. In automated mode books that cannot be
classified go to the unsorted folder; in interactive mode you are prompted
for each one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mode, err := resolveMode(cmd.InOrStdin(), cmd.OutOrStdout(), autoFlag, interactiveFlag)
			if err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}

			if mode == classify.ModeInteractive && !prompter.IsInteractiveTerminal() {
				return errors.New("interactive mode requires a terminal; use --auto instead")
			}

			summary, err := runOrganize(cmd, cfg, mode)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summary.Render())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoFlag, "auto", "a", false, "Automated mode: unclassifiable books go to the unsorted folder")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Interactive mode: prompt for books no strategy can classify")
	cmd.Flags().BoolVar(&autoFlag, "automated", false, "")
	cmd.Flags().BoolVar(&interactiveFlag, "prompt", false, "")
	_ = cmd.Flags().MarkHidden("automated")
	_ = cmd.Flags().MarkHidden("prompt")

	return cmd
}

// resolveMode picks the run mode from flags, falling back to an interactive
// menu when neither flag is set.
func resolveMode(in io.Reader, out io.Writer, auto, interactive bool) (classify.Mode, error) {
	if auto && interactive {
		return 0, errors.New("--auto and --interactive are mutually exclusive")
	}
	if auto {
		return classify.ModeAutomated, nil
	}
	if interactive {
		return classify.ModeInteractive, nil
	}

	fmt.Fprintln(out, "Choose operating mode:")
	fmt.Fprintln(out, "  1. AUTOMATED    - uncertain files go to the unsorted folder")
	fmt.Fprintln(out, "  2. INTERACTIVE  - prompt for uncertain files")
	fmt.Fprintln(out, "Press 1 for Automated, 2 for Interactive, or Q to quit")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Enter your choice (1/2/Q): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return 0, errQuit
			}
			return 0, fmt.Errorf("read mode choice: %w", err)
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "1":
			return classify.ModeAutomated, nil
		case "2":
			return classify.ModeInteractive, nil
		case "Q":
			return 0, errQuit
		}
	}
}

func runOrganize(cmd *cobra.Command, cfg *config.Config, mode classify.Mode) (summary report.Summary, err error) {
	logger, err := logging.NewWithLogDir(cfg.Paths.LogDir, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return summary, fmt.Errorf("initialize logging: %w", err)
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	oracle := ollama.NewClient(ollama.Config{
		BaseURL:        cfg.Ollama.BaseURL,
		Model:          cfg.Ollama.Model,
		Temperature:    cfg.Ollama.Temperature,
		TimeoutSeconds: cfg.Ollama.TimeoutSeconds,
	})
	logger.Info("oracle configured",
		logging.String("endpoint", oracle.BaseURL()),
		logging.String("model", oracle.Model()))
	if err := oracle.HealthCheck(runCtx); err != nil {
		logger.Warn("oracle unreachable; filename and content classification will fail over to later strategies",
			logging.String("endpoint", oracle.BaseURL()),
			logging.Error(err))
	}

	cascade := buildCascade(cfg, mode, oracle, logger)
	mover := organizer.NewMover(cfg.Paths.LibraryDir, logger)

	dbPath := cfg.ProgressDBPath()
	reconcileFirst := !progress.Exists(dbPath)
	store, err := progress.Open(dbPath)
	if err != nil {
		return summary, fmt.Errorf("open progress database: %w", err)
	}
	defer store.Close()

	runner := workflow.New(cfg, store, cascade, mover, mode, logger)
	return runner.Run(runCtx, reconcileFirst)
}

func buildCascade(cfg *config.Config, mode classify.Mode, oracle *ollama.Client, logger *slog.Logger) *classify.Cascade {
	strategies := []classify.Classifier{
		classify.NewFilenameClassifier(oracle, logger),
		classify.NewContentClassifier(oracle, cfg.Classifier.MaxPages, cfg.Classifier.ExcerptLimit, logger),
	}
	if cfg.Search.Enabled {
		searcher := websearch.NewClient(websearch.Config{
			BaseURL:        cfg.Search.BaseURL,
			TimeoutSeconds: cfg.Search.TimeoutSeconds,
			MaxResults:     cfg.Search.MaxResults,
		})
		strategies = append(strategies, classify.NewSearchClassifier(searcher, oracle, logger))
	}

	var ask classify.Prompter
	if mode == classify.ModeInteractive {
		ask = prompter.NewTerminalPrompter()
	}
	strategies = append(strategies, classify.NewFallbackClassifier(mode, cfg.Organizer.UnsortedDir, ask, logger))

	return classify.NewCascade(logger, strategies...)
}
