package corpus

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Placeholder body shown when a record cannot be read back.
const unreadableBody = "(read error)"

// ErrBadRecord means a line did not split into three fields.
var ErrBadRecord = errors.New("corpus: malformed record")

// Record is one parsed verse line. It lives only as long as the caller
// displays it; nothing caches records.
type Record struct {
	Ref  string
	Book string
	Body string
}

// parseRecord splits a raw line on its first two delimiters. The body
// is everything after the second delimiter, further delimiters
// included.
func parseRecord(line string) (Record, bool) {
	ref, rest, ok := strings.Cut(line, string(Delim))
	if !ok {
		return Record{}, false
	}
	book, body, ok := strings.Cut(rest, string(Delim))
	if !ok {
		return Record{}, false
	}
	return Record{Ref: ref, Book: book, Body: body}, true
}

// ReadRecord seeks to the indexed offset of pos and parses that one
// line. On a seek, read, or parse failure it still returns a usable
// Record — reference from the index cache, placeholder body — along
// with the error, so callers degrade to a placeholder display instead
// of aborting. The file cursor moves; never interleave with another
// read or search on the same handle.
func ReadRecord(f *os.File, ix *Index, pos int) (Record, error) {
	fallback := Record{Ref: ix.Ref(pos), Body: unreadableBody}
	if pos < 0 || pos >= ix.Count() {
		return fallback, fmt.Errorf("corpus: position %d of %d", pos, ix.Count())
	}

	lr, err := newLineReader(f, int64(ix.Offset(pos)))
	if err != nil {
		return fallback, fmt.Errorf("read record %d: %w", pos, err)
	}
	line, _, ok, err := lr.next()
	if err != nil {
		return fallback, fmt.Errorf("read record %d: %w", pos, err)
	}
	if !ok {
		return fallback, fmt.Errorf("read record %d: offset past end of file", pos)
	}

	rec, ok := parseRecord(string(line))
	if !ok {
		return fallback, fmt.Errorf("read record %d: %w", pos, ErrBadRecord)
	}
	return rec, nil
}
