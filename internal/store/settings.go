package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"versicle/internal/canon"
	"versicle/internal/remote"
)

// Settings is the fixed set of persisted preferences. Keys are written
// in a fixed order; unknown keys and out-of-range values in the file
// are skipped on load so old and new builds can share one file.
type Settings struct {
	VerseFile   string // filename of the active corpus, e.g. "verses_en.txt"
	WidthChoice int    // index into the display width table
	Translation string // remote lookup translation code
	PickBook    int    // 0-based book for the remote picker
	PickChapter int    // 1-based chapter
	PickVerse   int    // 1-based verse
	DailyIndex  int    // persisted verse-of-the-day position
	DailyDay    int64  // day counter DailyIndex was chosen for
}

// WidthChoiceCount is the number of selectable display widths.
const WidthChoiceCount = 5

// maxDailyIndex mirrors the index capacity; larger persisted values
// are stale and ignored.
const maxDailyIndex = 600

// DefaultSettings returns the in-memory defaults applied before any
// file is read and kept for every key the file does not supply.
func DefaultSettings() Settings {
	return Settings{
		Translation: remote.Translations[0].Code,
		PickChapter: 1,
		PickVerse:   1,
	}
}

// LoadSettings reads key=value lines from path on top of the defaults.
// A missing file is not an error; every key falls back independently.
func LoadSettings(path string) Settings {
	s := DefaultSettings()
	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		key, val, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		switch key {
		case "verse_file":
			if val != "" {
				s.VerseFile = val
			}
		case "font_size":
			if v, err := strconv.Atoi(val); err == nil && v >= 0 && v < WidthChoiceCount {
				s.WidthChoice = v
			}
		case "api_trans":
			if remote.TranslationIndex(val) >= 0 {
				s.Translation = val
			}
		case "api_book":
			if v, err := strconv.Atoi(val); err == nil && v >= 0 && v < canon.BookCount {
				s.PickBook = v
			}
		case "api_chapter":
			if v, err := strconv.Atoi(val); err == nil && v >= 1 && v <= canon.MaxChapters {
				s.PickChapter = v
			}
		case "api_verse":
			if v, err := strconv.Atoi(val); err == nil && v >= 1 && v <= canon.MaxVerses {
				s.PickVerse = v
			}
		case "daily_idx":
			if v, err := strconv.Atoi(val); err == nil && v >= 0 && v < maxDailyIndex {
				s.DailyIndex = v
			}
		case "daily_day":
			if v, err := strconv.ParseInt(val, 10, 64); err == nil && v >= 0 {
				s.DailyDay = v
			}
		}
	}
	return s
}

// Save rewrites the settings file with every key in fixed order.
func (s Settings) Save(path string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "verse_file=%s\n", s.VerseFile)
	fmt.Fprintf(&sb, "font_size=%d\n", s.WidthChoice)
	fmt.Fprintf(&sb, "api_trans=%s\n", s.Translation)
	fmt.Fprintf(&sb, "api_book=%d\n", s.PickBook)
	fmt.Fprintf(&sb, "api_chapter=%d\n", s.PickChapter)
	fmt.Fprintf(&sb, "api_verse=%d\n", s.PickVerse)
	fmt.Fprintf(&sb, "daily_idx=%d\n", s.DailyIndex)
	fmt.Fprintf(&sb, "daily_day=%d\n", s.DailyDay)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
