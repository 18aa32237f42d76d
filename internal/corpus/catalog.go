// Package corpus implements the verse-file storage engine: discovery
// of corpus files, the sparse offset index built in one streaming
// pass, seek-based record retrieval, streaming substring search, and
// the session object that owns the single open file handle.
//
// Every structure is capped (600 index entries, 50 search hits, one
// 320-byte line buffer) so memory stays flat regardless of file size.
package corpus

import (
	"os"
	"path/filepath"
	"strings"
)

// MaxFiles caps how many corpus files discovery reports.
const MaxFiles = 8

// File is one discovered corpus file.
type File struct {
	Label string
	Path  string
}

// wellKnown lists the canonical corpus filenames in priority order.
var wellKnown = []File{
	{"KJV (English)", "verses_en.txt"},
	{"ESV (English)", "verses_esv.txt"},
	{"Luther 1912 (DE)", "verses_de.txt"},
}

// Discover lists corpus files under dir: the well-known names first,
// in fixed order, then any other verses_*.txt from the directory
// listing labeled by its language code. At most MaxFiles entries are
// returned; an empty result means no corpus is available.
func Discover(dir string) []File {
	var files []File

	for _, k := range wellKnown {
		if len(files) >= MaxFiles {
			return files
		}
		p := filepath.Join(dir, k.Path)
		if _, err := os.Stat(p); err == nil {
			files = append(files, File{Label: k.Label, Path: p})
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return files
	}
	for _, e := range entries {
		if len(files) >= MaxFiles {
			break
		}
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "verses_") || !strings.HasSuffix(name, ".txt") {
			continue
		}
		if isWellKnown(name) {
			continue
		}
		code := strings.TrimSuffix(strings.TrimPrefix(name, "verses_"), ".txt")
		if code == "" {
			continue
		}
		files = append(files, File{
			Label: "Custom (" + code + ")",
			Path:  filepath.Join(dir, name),
		})
	}
	return files
}

func isWellKnown(name string) bool {
	for _, k := range wellKnown {
		if k.Path == name {
			return true
		}
	}
	return false
}
