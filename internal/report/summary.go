package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary aggregates the outcome of one run.
type Summary struct {
	RunID        string
	Mode         string
	Processed    int
	Skipped      int
	Failed       int
	GenreCounts  map[string]int
	ManifestPath string
}

// Render formats the summary as a genre-count table with totals, suitable for
// terminal output.
func (s Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s complete (%s mode)\n", s.RunID, s.Mode)
	fmt.Fprintf(&b, "Processed: %d  Skipped: %d  Failed: %d\n", s.Processed, s.Skipped, s.Failed)

	if len(s.GenreCounts) > 0 {
		b.WriteString(GenreTable(s.GenreCounts))
		b.WriteByte('\n')
	}

	if s.ManifestPath != "" {
		fmt.Fprintf(&b, "Manifest: %s\n", s.ManifestPath)
	}
	return b.String()
}

// GenreTable renders genre counts as a sorted two-column table with a total
// row.
func GenreTable(counts map[string]int) string {
	genres := make([]string, 0, len(counts))
	for genre := range counts {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	rows := make([][]string, 0, len(genres)+1)
	total := 0
	for _, genre := range genres {
		rows = append(rows, []string{genre, strconv.Itoa(counts[genre])})
		total += counts[genre]
	}
	rows = append(rows, []string{"Total", strconv.Itoa(total)})
	return renderTable([]string{"Genre", "Books"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
