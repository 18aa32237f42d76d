// Package store persists bookmarks and settings as small line-oriented
// text files. Both stores open, transfer, and close on every call; no
// file handle survives between operations, and every save rewrites the
// file in full. In-memory state stays authoritative when a write fails.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxBookmarks caps the bookmark set. Adding past the cap is a no-op.
const MaxBookmarks = 75

// Bookmarks is an ordered set of record positions. Order is insertion
// order; removal shifts later entries down.
type Bookmarks struct {
	pos []int
}

// LoadBookmarks reads the bookmark file at path, one unsigned decimal
// per line. Values at or beyond limit are stale references to a longer
// corpus and are dropped. A missing or unreadable file yields an empty
// set, not an error.
func LoadBookmarks(path string, limit int) *Bookmarks {
	b := &Bookmarks{}
	f, err := os.Open(path)
	if err != nil {
		return b
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() && b.Len() < MaxBookmarks {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < 0 || v >= limit {
			continue
		}
		b.Add(v)
	}
	return b
}

// Save rewrites the whole bookmark file from the in-memory set.
func (b *Bookmarks) Save(path string) error {
	var sb strings.Builder
	for _, p := range b.pos {
		fmt.Fprintf(&sb, "%d\n", p)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

// Contains reports whether position p is bookmarked.
func (b *Bookmarks) Contains(p int) bool {
	for _, v := range b.pos {
		if v == p {
			return true
		}
	}
	return false
}

// Add appends p if it is not already present and the cap allows it.
// It reports whether the set changed.
func (b *Bookmarks) Add(p int) bool {
	if b.Contains(p) || len(b.pos) >= MaxBookmarks {
		return false
	}
	b.pos = append(b.pos, p)
	return true
}

// Remove deletes p, shifting later entries down. It reports whether p
// was present.
func (b *Bookmarks) Remove(p int) bool {
	for i, v := range b.pos {
		if v == p {
			b.pos = append(b.pos[:i], b.pos[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle flips the bookmarked state of p and reports whether p is
// bookmarked afterwards.
func (b *Bookmarks) Toggle(p int) bool {
	if b.Remove(p) {
		return false
	}
	return b.Add(p)
}

// Positions returns the bookmarked positions in insertion order.
func (b *Bookmarks) Positions() []int {
	out := make([]int, len(b.pos))
	copy(out, b.pos)
	return out
}

// Len returns the number of bookmarks.
func (b *Bookmarks) Len() int { return len(b.pos) }
