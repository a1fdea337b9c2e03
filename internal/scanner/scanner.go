package scanner

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"bindery/internal/logging"
)

// ebookExtensions is the fixed allow-list of recognized ebook formats.
var ebookExtensions = map[string]struct{}{
	".pdf":  {},
	".epub": {},
	".mobi": {},
	".txt":  {},
	".azw":  {},
	".azw3": {},
	".fb2":  {},
	".lit":  {},
	".pdb":  {},
	".tcr":  {},
	".djvu": {},
	".cbr":  {},
}

// systemFolders are folder names that never count as genre folders during
// reconciliation.
var systemFolders = map[string]struct{}{
	"System Volume Information": {},
	"$RECYCLE.BIN":              {},
	"RECYCLER":                  {},
	"lost+found":                {},
	"Temp":                      {},
	"tmp":                       {},
	"node_modules":              {},
	"__pycache__":               {},
}

// IsEbookPath reports whether the file name carries a recognized ebook
// extension (case-insensitive).
func IsEbookPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := ebookExtensions[ext]
	return ok
}

// IsSystemFolder reports whether a folder name should be skipped when deriving
// genre folders. Hidden folders (leading dot) are always skipped.
func IsSystemFolder(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := systemFolders[name]
	return ok
}

// Extensions returns the recognized extensions in sorted order.
func Extensions() []string {
	out := make([]string, 0, len(ebookExtensions))
	for ext := range ebookExtensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Scan walks root recursively and returns the absolute paths of all files
// whose extension is in the allow-list. Output is sorted so runs are
// deterministic across platforms. Unreadable entries below the root are
// logged and skipped so one bad subfolder never aborts a run; symlinks are
// not followed.
func Scan(root string, logger *slog.Logger) ([]string, error) {
	log := logging.NewComponentLogger(logger, "scanner")
	root = filepath.Clean(root)
	paths := make([]string, 0, 128)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			log.Warn("skipping unreadable entry",
				logging.String("path", path),
				logging.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsEbookPath(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
