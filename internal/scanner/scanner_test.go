package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanFiltersByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.epub"))
	writeFile(t, filepath.Join(root, "b.PDF"))
	writeFile(t, filepath.Join(root, "notes.md"))
	writeFile(t, filepath.Join(root, "nested", "deep", "c.mobi"))

	paths, err := Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 ebooks, got %d: %v", len(paths), paths)
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Fatalf("scan output not sorted: %v", paths)
		}
	}
}

func TestScanSkipsUnreadableSubfolder(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.epub"))
	writeFile(t, filepath.Join(root, "locked", "b.epub"))

	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	paths, err := Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan must survive an unreadable subfolder: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "a.epub" {
		t.Fatalf("expected only the readable ebook, got %v", paths)
	}
}

func TestScanMissingRootFails(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent"), nil); err == nil {
		t.Fatal("a missing root must still be an error")
	}
}

func TestIsEbookPath(t *testing.T) {
	for _, name := range []string{"x.pdf", "x.EPUB", "x.azw3", "x.cbr", "x.djvu"} {
		if !IsEbookPath(name) {
			t.Errorf("IsEbookPath(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"x.doc", "x", "x.epub.bak"} {
		if IsEbookPath(name) {
			t.Errorf("IsEbookPath(%q) = true, want false", name)
		}
	}
}

func TestIsSystemFolder(t *testing.T) {
	for _, name := range []string{".git", ".hidden", "$RECYCLE.BIN", "System Volume Information", "tmp"} {
		if !IsSystemFolder(name) {
			t.Errorf("IsSystemFolder(%q) = false, want true", name)
		}
	}
	if IsSystemFolder("Science Fiction") {
		t.Error("IsSystemFolder flagged a genre folder")
	}
}
