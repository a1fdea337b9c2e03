package organizer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestMoveCreatesGenreFolder(t *testing.T) {
	library := t.TempDir()
	source := filepath.Join(library, "dune.epub")
	writeFile(t, source, "book")

	mover := NewMover(library, nil)
	dest, err := mover.Move(source, "Science Fiction")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	want := filepath.Join(library, "Science Fiction", "dune.epub")
	if dest != want {
		t.Fatalf("expected %q, got %q", want, dest)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Fatal("source should be gone after move")
	}
}

func TestMoveCollisionSuffix(t *testing.T) {
	library := t.TempDir()
	writeFile(t, filepath.Join(library, "History", "rome.pdf"), "existing")
	writeFile(t, filepath.Join(library, "History", "rome(1).pdf"), "existing too")
	source := filepath.Join(library, "rome.pdf")
	writeFile(t, source, "incoming")

	mover := NewMover(library, nil)
	dest, err := mover.Move(source, "History")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if dest != filepath.Join(library, "History", "rome(2).pdf") {
		t.Fatalf("unexpected collision target %q", dest)
	}
	// Existing files are never overwritten.
	data, err := os.ReadFile(filepath.Join(library, "History", "rome.pdf"))
	if err != nil || string(data) != "existing" {
		t.Fatalf("original file was disturbed: %q %v", data, err)
	}
}

func TestNormalizeGenre(t *testing.T) {
	mover := NewMover(t.TempDir(), nil)
	cases := []struct {
		in   string
		want string
	}{
		{"science fiction", "Science Fiction"},
		{"Science Fiction", "Science Fiction"},
		{"  history   of  rome ", "History Of Rome"},
		{"Sci-Fi/Fantasy", "Sci-Fi-Fantasy"},
		{"UNSORTED", "UNSORTED"},
		{"UNDETERMINED", "UNDETERMINED"},
	}
	for _, tc := range cases {
		if got := mover.NormalizeGenre(tc.in); got != tc.want {
			t.Errorf("NormalizeGenre(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoveRejectsEmptyGenre(t *testing.T) {
	library := t.TempDir()
	source := filepath.Join(library, "x.epub")
	writeFile(t, source, "book")

	mover := NewMover(library, nil)
	if _, err := mover.Move(source, "???"); err == nil {
		t.Fatal("expected error for genre that normalizes to nothing")
	}
	if _, err := os.Stat(source); err != nil {
		t.Fatal("failed move must leave the source in place")
	}
}
