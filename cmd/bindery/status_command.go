package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bindery/internal/progress"
	"bindery/internal/report"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show library organization progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			dbPath := cfg.ProgressDBPath()
			if !progress.Exists(dbPath) {
				fmt.Fprintln(out, "No progress recorded yet; run `bindery run` first.")
				return nil
			}

			store, err := progress.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open progress database: %w", err)
			}
			defer store.Close()

			total, err := store.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count processed files: %w", err)
			}
			counts, err := store.GenreCounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("load genre counts: %w", err)
			}

			fmt.Fprintf(out, "Library: %s\n", cfg.Paths.LibraryDir)
			fmt.Fprintf(out, "Processed files: %d\n", total)
			if len(counts) > 0 {
				fmt.Fprintln(out, report.GenreTable(counts))
			}
			fmt.Fprintf(out, "Manifest: %s\n", cfg.Paths.CSVPath)
			return nil
		},
	}
}
