package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

const (
	// MaxVerses caps the index. Files with more well-formed lines are
	// truncated to the first MaxVerses records; that is policy, not an
	// error.
	MaxVerses = 600

	// refLen is how many bytes of the reference field each index entry
	// caches, so list views never re-read the file.
	refLen = 23

	// Delim separates the three fields of a record line.
	Delim = '|'
)

// ErrEmptyIndex means the file held no well-formed record at all.
var ErrEmptyIndex = errors.New("corpus: no records in file")

// IndexEntry locates one record and caches a prefix of its reference.
type IndexEntry struct {
	Offset uint32
	Ref    string
}

// Index is the ordered offset table for the active corpus file. It is
// built once per file and discarded whole on a file switch.
type Index struct {
	entries []IndexEntry
}

// BuildIndex scans f from byte 0 in a single streaming pass and
// records the offset and truncated reference of every well-formed
// line. Blank lines and lines without a field delimiter are skipped
// without consuming an index slot. The scan stops at EOF or at the
// MaxVerses cap, whichever comes first. A file yielding zero entries
// fails with ErrEmptyIndex.
func BuildIndex(f *os.File) (*Index, error) {
	lr, err := newLineReader(f, 0)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	ix := &Index{entries: make([]IndexEntry, 0, 64)}
	for len(ix.entries) < MaxVerses {
		line, start, ok, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("index at offset %d: %w", start, err)
		}
		if !ok {
			break
		}
		if len(line) == 0 {
			continue
		}
		sep := bytes.IndexByte(line, Delim)
		if sep < 0 {
			continue // malformed record, keep scanning
		}
		if sep > refLen {
			sep = refLen
		}
		ix.entries = append(ix.entries, IndexEntry{
			Offset: uint32(start),
			Ref:    string(line[:sep]),
		})
	}
	if len(ix.entries) == 0 {
		return nil, ErrEmptyIndex
	}
	return ix, nil
}

// Count returns the number of indexed records.
func (ix *Index) Count() int { return len(ix.entries) }

// Ref returns the cached reference for position pos, or "" when pos is
// out of range.
func (ix *Index) Ref(pos int) string {
	if pos < 0 || pos >= len(ix.entries) {
		return ""
	}
	return ix.entries[pos].Ref
}

// Offset returns the byte offset of the record at pos.
func (ix *Index) Offset(pos int) uint32 {
	if pos < 0 || pos >= len(ix.entries) {
		return 0
	}
	return ix.entries[pos].Offset
}
