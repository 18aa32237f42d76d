package corpus

import "testing"

func TestReadRecord(t *testing.T) {
	f := writeCorpus(t, "A|Genesis|In the beginning...\n"+
		"B|John|For God so loved...\n")

	ix, err := BuildIndex(f)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if ix.Count() != 2 {
		t.Fatalf("count = %d, want 2", ix.Count())
	}

	rec, err := ReadRecord(f, ix, 0)
	if err != nil {
		t.Fatalf("ReadRecord(0) failed: %v", err)
	}
	if rec.Ref != "A" || rec.Book != "Genesis" || rec.Body != "In the beginning..." {
		t.Errorf("record = %+v", rec)
	}
}

func TestReadRecordIdempotent(t *testing.T) {
	f := writeCorpus(t, "A|Genesis|In the beginning...\n"+
		"B|John|For God so loved...\n"+
		"C|Psalms|The LORD is my shepherd\n")

	ix, err := BuildIndex(f)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	// Reads in any order, repeated, always return the same fields.
	order := []int{1, 1, 0, 2, 0, 1}
	want := []Record{
		{"A", "Genesis", "In the beginning..."},
		{"B", "John", "For God so loved..."},
		{"C", "Psalms", "The LORD is my shepherd"},
	}
	for _, pos := range order {
		rec, err := ReadRecord(f, ix, pos)
		if err != nil {
			t.Fatalf("ReadRecord(%d) failed: %v", pos, err)
		}
		if rec != want[pos] {
			t.Errorf("ReadRecord(%d) = %+v, want %+v", pos, rec, want[pos])
		}
	}
}

func TestReadRecordBodyKeepsDelimiters(t *testing.T) {
	f := writeCorpus(t, "Ref|Book|body with | extra | pipes\n")

	ix, err := BuildIndex(f)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	rec, err := ReadRecord(f, ix, 0)
	if err != nil {
		t.Fatalf("ReadRecord failed: %v", err)
	}
	if rec.Body != "body with | extra | pipes" {
		t.Errorf("body = %q", rec.Body)
	}
}

func TestReadRecordOutOfRange(t *testing.T) {
	f := writeCorpus(t, "A|Genesis|In the beginning...\n")

	ix, err := BuildIndex(f)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	rec, err := ReadRecord(f, ix, 5)
	if err == nil {
		t.Fatal("expected error for out-of-range position")
	}
	if rec.Body != unreadableBody {
		t.Errorf("placeholder body = %q", rec.Body)
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		want Record
	}{
		{"well formed", "John 3:16|John|For God so loved", true,
			Record{"John 3:16", "John", "For God so loved"}},
		{"body with pipes", "a|b|c|d", true, Record{"a", "b", "c|d"}},
		{"empty body", "a|b|", true, Record{"a", "b", ""}},
		{"one delimiter", "a|b", false, Record{}},
		{"no delimiter", "plain text", false, Record{}},
		{"empty line", "", false, Record{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := parseRecord(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if rec != tt.want {
				t.Errorf("record = %+v, want %+v", rec, tt.want)
			}
		})
	}
}
