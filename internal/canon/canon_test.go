package canon

import "testing"

func TestVerseCount(t *testing.T) {
	tests := []struct {
		name     string
		book     int
		chapter  int
		expected int
	}{
		{"Genesis 1", 0, 1, 31},
		{"Genesis 50", 0, 50, 26},
		{"Psalms 117", 18, 117, 2},
		{"Psalms 119", 18, 119, 176},
		{"John 3", 42, 3, 36},
		{"John 11", 42, 11, 57},
		{"Revelation 22", 65, 22, 21},
		{"chapter zero", 0, 0, 0},
		{"chapter past end", 0, 51, 0},
		{"book below range", -1, 1, 0},
		{"book past end", 66, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerseCount(tt.book, tt.chapter); got != tt.expected {
				t.Errorf("VerseCount(%d, %d) = %d, want %d", tt.book, tt.chapter, got, tt.expected)
			}
		})
	}
}

func TestChapterCount(t *testing.T) {
	tests := []struct {
		name     string
		book     int
		expected int
	}{
		{"Genesis", 0, 50},
		{"Psalms", 18, 150},
		{"Obadiah", 30, 1},
		{"John", 42, 21},
		{"Revelation", 65, 22},
		{"out of range low", -1, 0},
		{"out of range high", 66, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChapterCount(tt.book); got != tt.expected {
				t.Errorf("ChapterCount(%d) = %d, want %d", tt.book, got, tt.expected)
			}
		})
	}
}

func TestTableConsistency(t *testing.T) {
	// Every book's chapter range must index into the flat table without
	// overlapping its neighbors, and the final book must end the table.
	for b := 0; b < BookCount; b++ {
		if b > 0 {
			prevEnd := int(chapterOffsets[b-1]) + books[b-1].Chapters
			if int(chapterOffsets[b]) != prevEnd {
				t.Errorf("book %d (%s): offset %d, want %d", b, books[b].Name, chapterOffsets[b], prevEnd)
			}
		}
		for c := 1; c <= books[b].Chapters; c++ {
			if VerseCount(b, c) == 0 {
				t.Errorf("%s %d: zero verse count", books[b].Name, c)
			}
		}
	}
	if end := int(chapterOffsets[BookCount-1]) + books[BookCount-1].Chapters; end != totalChapters {
		t.Errorf("table ends at %d, want %d", end, totalChapters)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		book    int
		chapter int
		verse   int
		wantB   int
		wantC   int
		wantV   int
	}{
		{"in range", 42, 3, 16, 42, 3, 16},
		{"book low", -5, 1, 1, 0, 1, 1},
		{"book high", 99, 1, 1, 65, 1, 1},
		{"chapter high", 0, 200, 1, 0, 50, 1},
		{"chapter low", 0, 0, 1, 0, 1, 1},
		{"verse high", 0, 1, 99, 0, 1, 31},
		{"verse low", 0, 1, 0, 0, 1, 1},
		{"everything high", 200, 999, 999, 65, 22, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, c, v := Clamp(tt.book, tt.chapter, tt.verse)
			if b != tt.wantB || c != tt.wantC || v != tt.wantV {
				t.Errorf("Clamp(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.book, tt.chapter, tt.verse, b, c, v, tt.wantB, tt.wantC, tt.wantV)
			}
		})
	}
}

func TestFindBook(t *testing.T) {
	tests := []struct {
		prefix   string
		expected int
	}{
		{"gen", 0},
		{"Gen", 0},
		{"psa", 18},
		{"1 cor", 45},
		{"joh", 42},
		{"rev", 65},
		{"xyz", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := FindBook(tt.prefix); got != tt.expected {
			t.Errorf("FindBook(%q) = %d, want %d", tt.prefix, got, tt.expected)
		}
	}
}
