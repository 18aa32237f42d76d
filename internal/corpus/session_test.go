package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sessionDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	en := "Gen 1:1|Genesis|In the beginning God created\n" +
		"Gen 1:2|Genesis|And the earth was without form\n" +
		"John 3:16|John|For God so loved the world\n"
	de := "1. Mose 1:1|1. Mose|Am Anfang schuf Gott\n" +
		"Joh 3:16|Johannes|Also hat Gott die Welt geliebt\n"
	if err := os.WriteFile(filepath.Join(dir, "verses_en.txt"), []byte(en), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "verses_de.txt"), []byte(de), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestOpenSession(t *testing.T) {
	s, err := OpenSession(sessionDir(t))
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	defer s.Close()

	if s.Count() != 3 {
		t.Errorf("count = %d, want 3", s.Count())
	}
	if s.Active() != 0 {
		t.Errorf("active = %d, want 0", s.Active())
	}

	rec, err := s.Record(2)
	if err != nil {
		t.Fatalf("Record(2) failed: %v", err)
	}
	if rec.Ref != "John 3:16" || rec.Body != "For God so loved the world" {
		t.Errorf("record = %+v", rec)
	}
}

func TestOpenSessionNoCorpus(t *testing.T) {
	if _, err := OpenSession(t.TempDir()); !errors.Is(err, ErrNoCorpus) {
		t.Errorf("err = %v, want ErrNoCorpus", err)
	}
}

func TestSwitchFile(t *testing.T) {
	s, err := OpenSession(sessionDir(t))
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	defer s.Close()

	if err := s.SwitchFile(1); err != nil {
		t.Fatalf("SwitchFile failed: %v", err)
	}
	if s.Count() != 2 {
		t.Errorf("count after switch = %d, want 2", s.Count())
	}
	if s.Ref(0) != "1. Mose 1:1" {
		t.Errorf("Ref(0) = %q", s.Ref(0))
	}
	if s.Settings().VerseFile != "verses_de.txt" {
		t.Errorf("settings verse_file = %q", s.Settings().VerseFile)
	}

	if err := s.SwitchFile(9); err == nil {
		t.Error("expected error for out-of-range file")
	}
}

func TestSessionReopensActiveFile(t *testing.T) {
	dir := sessionDir(t)

	s, err := OpenSession(dir)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	if err := s.SwitchFile(1); err != nil {
		t.Fatalf("SwitchFile failed: %v", err)
	}
	if err := s.SaveSettings(); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	s.Close()

	// A new session honors the persisted file choice.
	s2, err := OpenSession(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()
	if s2.Active() != 1 {
		t.Errorf("active after reopen = %d, want 1", s2.Active())
	}
}

func TestSessionBookmarks(t *testing.T) {
	dir := sessionDir(t)

	s, err := OpenSession(dir)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	if on := s.ToggleBookmark(2); !on {
		t.Error("toggle on reported off")
	}
	if !s.IsBookmarked(2) {
		t.Error("position 2 not bookmarked")
	}
	s.Close()

	// Bookmarks survive into a fresh session with the same corpus.
	s2, err := OpenSession(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if !s2.IsBookmarked(2) {
		t.Error("bookmark lost across sessions")
	}
	if on := s2.ToggleBookmark(2); on {
		t.Error("toggle off reported on")
	}
	if got := s2.Bookmarks(); len(got) != 0 {
		t.Errorf("bookmarks = %v, want empty", got)
	}
	s2.Close()
}

func TestSessionDropsStaleBookmarks(t *testing.T) {
	dir := sessionDir(t)

	s, err := OpenSession(dir)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	s.ToggleBookmark(0)
	s.ToggleBookmark(2) // beyond the 2-record German file

	// Switching to the shorter corpus silently drops position 2.
	if err := s.SwitchFile(1); err != nil {
		t.Fatalf("SwitchFile failed: %v", err)
	}
	if s.IsBookmarked(2) {
		t.Error("stale bookmark survived file switch")
	}
	if !s.IsBookmarked(0) {
		t.Error("valid bookmark dropped")
	}
	s.Close()
}

func TestSessionSearch(t *testing.T) {
	s, err := OpenSession(sessionDir(t))
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	defer s.Close()

	hits, err := s.Search("world")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0] != 2 {
		t.Errorf("hits = %v, want [2]", hits)
	}

	// A search never disturbs subsequent record reads.
	rec, err := s.Record(hits[0])
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if rec.Ref != "John 3:16" {
		t.Errorf("record = %+v", rec)
	}
}

func TestSessionRandomAndDaily(t *testing.T) {
	s, err := OpenSession(sessionDir(t))
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	defer s.Close()

	for i := 0; i < 50; i++ {
		if p := s.Random(); p < 0 || p >= s.Count() {
			t.Fatalf("Random() = %d out of range", p)
		}
	}

	// Daily is stable within a day and always in range.
	first := s.Daily()
	if first < 0 || first >= s.Count() {
		t.Fatalf("Daily() = %d out of range", first)
	}
	for i := 0; i < 10; i++ {
		if again := s.Daily(); again != first {
			t.Fatalf("Daily() changed within a day: %d then %d", first, again)
		}
	}

	// The pick is persisted for the next session.
	if got := s.Settings().DailyIndex; got != first {
		t.Errorf("settings daily index = %d, want %d", got, first)
	}
}
