package corpus

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"versicle/internal/store"
)

const (
	bookmarkFile = "bookmarks.txt"
	settingsFile = "settings.txt"
)

// ErrNoCorpus means discovery found no verse files. Retrying cannot
// succeed without a change on disk, so this ends the session.
var ErrNoCorpus = errors.New("corpus: no verse files found")

// Session owns the single open handle to the active corpus file, the
// offset index built for it, and the bookmark and settings stores. It
// is single-threaded: every operation completes its seek and read
// before another may touch the handle. All state sized by record count
// is revalidated whenever the active file changes.
type Session struct {
	dir      string
	files    []File
	active   int
	file     *os.File
	index    *Index
	marks    *store.Bookmarks
	settings store.Settings
}

// OpenSession discovers corpus files under dir, applies saved
// settings, opens and indexes the preferred file, and loads bookmarks
// against its record count. ErrNoCorpus is fatal; an unreadable first
// choice is too, since nothing on disk will change on retry.
func OpenSession(dir string) (*Session, error) {
	files := Discover(dir)
	if len(files) == 0 {
		return nil, ErrNoCorpus
	}

	s := &Session{dir: dir, files: files}
	s.settings = store.LoadSettings(s.settingsPath())

	active := 0
	for i, f := range files {
		if filepath.Base(f.Path) == s.settings.VerseFile {
			active = i
			break
		}
	}
	if err := s.SwitchFile(active); err != nil {
		return nil, err
	}
	return s, nil
}

// SwitchFile makes files[i] the active corpus: the previous handle is
// closed and its index discarded before the new file is opened and
// indexed, and bookmarks are reloaded against the new record count.
func (s *Session) SwitchFile(i int) error {
	if i < 0 || i >= len(s.files) {
		return fmt.Errorf("corpus: no file at %d", i)
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
		s.index = nil
	}

	f, err := os.Open(s.files[i].Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.files[i].Path, err)
	}
	ix, err := BuildIndex(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("index %s: %w", s.files[i].Path, err)
	}

	s.file = f
	s.index = ix
	s.active = i
	s.marks = store.LoadBookmarks(s.bookmarkPath(), ix.Count())
	s.settings.VerseFile = filepath.Base(s.files[i].Path)
	return nil
}

// Close releases the corpus file handle.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Files returns the discovered corpus files.
func (s *Session) Files() []File { return s.files }

// Active returns the position of the active file within Files.
func (s *Session) Active() int { return s.active }

// Count returns the number of indexed records in the active file.
func (s *Session) Count() int { return s.index.Count() }

// Ref returns the cached reference for a record position without any
// file access.
func (s *Session) Ref(pos int) string { return s.index.Ref(pos) }

// Record reads the full record at pos from disk. On failure the
// returned record carries the cached reference and a placeholder body.
func (s *Session) Record(pos int) (Record, error) {
	return ReadRecord(s.file, s.index, pos)
}

// Search scans the active file for query and returns matching record
// positions, at most MaxHits of them.
func (s *Session) Search(query string) ([]int, error) {
	return Search(s.file, query, s.index.Count())
}

// IsBookmarked reports whether pos is in the bookmark set.
func (s *Session) IsBookmarked(pos int) bool { return s.marks.Contains(pos) }

// ToggleBookmark flips pos in the bookmark set and persists the whole
// set. A failed write keeps the in-memory set authoritative; the next
// successful save reconciles the file.
func (s *Session) ToggleBookmark(pos int) bool {
	on := s.marks.Toggle(pos)
	_ = s.marks.Save(s.bookmarkPath())
	return on
}

// Bookmarks returns the bookmarked positions in insertion order.
func (s *Session) Bookmarks() []int { return s.marks.Positions() }

// Random returns a uniformly random record position.
func (s *Session) Random() int {
	return rand.IntN(s.index.Count())
}

// Daily returns the verse-of-the-day position. The pick is made at
// most once per day and persisted, so it is stable across restarts; a
// new day or a pick beyond the current record count forces a fresh
// one.
func (s *Session) Daily() int {
	today := time.Now().Unix() / (60 * 60 * 24)
	if s.settings.DailyDay != today || s.settings.DailyIndex >= s.index.Count() {
		s.settings.DailyIndex = s.Random()
		s.settings.DailyDay = today
		_ = s.SaveSettings()
	}
	return s.settings.DailyIndex
}

// Settings returns the current settings record.
func (s *Session) Settings() store.Settings { return s.settings }

// SetSettings replaces the settings record. The caller decides when a
// change is persistence-worthy via SaveSettings.
func (s *Session) SetSettings(v store.Settings) { s.settings = v }

// SaveSettings rewrites the settings file.
func (s *Session) SaveSettings() error {
	return s.settings.Save(s.settingsPath())
}

func (s *Session) bookmarkPath() string { return filepath.Join(s.dir, bookmarkFile) }
func (s *Session) settingsPath() string { return filepath.Join(s.dir, settingsFile) }
