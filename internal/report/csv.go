package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bindery/internal/progress"
)

// manifestHeader is the fixed column layout of the CSV manifest.
var manifestHeader = []string{"Filename", "OriginalPath", "Genre", "ProcessingDate"}

// WriteManifest rewrites the CSV manifest at path from the full set of
// progress records. The file is replaced wholesale each run so it always
// mirrors the database.
func WriteManifest(path string, records []progress.Record) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(manifestHeader); err != nil {
		file.Close()
		return fmt.Errorf("write manifest header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Filename,
			record.Path,
			record.Genre,
			record.ProcessedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("write manifest row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush manifest: %w", err)
	}
	return file.Close()
}
