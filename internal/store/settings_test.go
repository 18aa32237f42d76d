package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")

	s := DefaultSettings()
	s.VerseFile = "verses_de.txt"
	s.WidthChoice = 3
	s.Translation = "kjv"
	s.PickBook = 42
	s.PickChapter = 3
	s.PickVerse = 16
	s.DailyIndex = 77
	s.DailyDay = 20500
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := LoadSettings(path)
	if got != s {
		t.Errorf("loaded = %+v, want %+v", got, s)
	}
}

func TestSettingsSaveKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	if err := DefaultSettings().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	wantKeys := []string{
		"verse_file", "font_size", "api_trans", "api_book",
		"api_chapter", "api_verse", "daily_idx", "daily_day",
	}
	if len(lines) != len(wantKeys) {
		t.Fatalf("%d lines, want %d: %q", len(lines), len(wantKeys), lines)
	}
	for i, line := range lines {
		key, _, ok := strings.Cut(line, "=")
		if !ok || key != wantKeys[i] {
			t.Errorf("line %d = %q, want key %q", i, line, wantKeys[i])
		}
	}
}

func TestSettingsLoadTolerant(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s Settings)
	}{
		{
			name:    "unknown keys skipped",
			content: "brightness=9\nverse_file=verses_en.txt\nfuture_key=hello\n",
			check: func(t *testing.T, s Settings) {
				if s.VerseFile != "verses_en.txt" {
					t.Errorf("verse_file = %q", s.VerseFile)
				}
			},
		},
		{
			name:    "out-of-range numerics keep defaults",
			content: "font_size=99\napi_book=200\napi_chapter=0\napi_verse=999\ndaily_idx=6000\n",
			check: func(t *testing.T, s Settings) {
				if s != DefaultSettings() {
					t.Errorf("settings = %+v, want defaults", s)
				}
			},
		},
		{
			name:    "unknown translation keeps default",
			content: "api_trans=nope\n",
			check: func(t *testing.T, s Settings) {
				if s.Translation != DefaultSettings().Translation {
					t.Errorf("translation = %q", s.Translation)
				}
			},
		},
		{
			name:    "non-numeric values skipped",
			content: "font_size=big\ndaily_day=-3\n",
			check: func(t *testing.T, s Settings) {
				if s.WidthChoice != 0 || s.DailyDay != 0 {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{
			name:    "blank lines and missing equals ignored",
			content: "\njust words\n=5\nfont_size=2\n",
			check: func(t *testing.T, s Settings) {
				if s.WidthChoice != 2 {
					t.Errorf("width choice = %d, want 2", s.WidthChoice)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			tt.check(t, LoadSettings(path))
		})
	}
}

func TestSettingsMissingFile(t *testing.T) {
	s := LoadSettings(filepath.Join(t.TempDir(), "absent.txt"))
	if s != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}
