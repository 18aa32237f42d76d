package corpus

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// MaxHits caps one search's result list.
const MaxHits = 50

// Search rescans f from byte 0 and returns the positions of records
// whose raw line contains query, case-insensitively. The whole line is
// tested, so matches in the reference or book fields count too.
//
// Positions are derived by counting non-blank lines with exactly the
// skip rules the indexer uses, so hit N maps to index position N
// without consulting the index. The scan stops at EOF, at the MaxHits
// cap, or once total records have been counted — whichever comes
// first. An empty query returns no hits without touching the file.
func Search(f *os.File, query string, total int) ([]int, error) {
	if query == "" {
		return nil, nil
	}
	needle := strings.ToLower(query)

	lr, err := newLineReader(f, 0)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var hits []int
	pos := 0
	for pos < total && len(hits) < MaxHits {
		line, start, ok, err := lr.next()
		if err != nil {
			return hits, fmt.Errorf("search at offset %d: %w", start, err)
		}
		if !ok {
			break
		}
		if len(line) == 0 || bytes.IndexByte(line, Delim) < 0 {
			continue // skipped by the indexer, so no position here either
		}
		if strings.Contains(strings.ToLower(string(line)), needle) {
			hits = append(hits, pos)
		}
		pos++
	}
	return hits, nil
}
