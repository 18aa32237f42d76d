// Package wrap lays out arbitrary-length text as a bounded set of
// fixed-width display lines. The layout is greedy and byte-oriented,
// sized for a small fixed display: at most MaxLines lines of at most
// MaxCols bytes each. Text past the last line is dropped.
package wrap

const (
	// MaxLines is the cap on output lines per wrap.
	MaxLines = 8
	// MaxCols is the widest supported column setting in bytes.
	MaxCols = 32
)

// Result holds wrapped lines plus a scroll cursor into them. It is
// recomputed whole on every Wrap call, never patched in place.
type Result struct {
	Lines  []string
	Scroll int
}

// Wrap splits text into at most MaxLines lines of at most cols bytes.
// cols is clamped to [1, MaxCols]. Breaks fall on the last space at or
// before the column boundary; a single word wider than the column is
// broken mid-word at exactly cols bytes. The space consumed at a soft
// break is not carried into the next line. Wrap is pure: equal inputs
// always produce equal output.
func Wrap(text string, cols int) Result {
	if cols < 1 {
		cols = 1
	}
	if cols > MaxCols {
		cols = MaxCols
	}

	var res Result
	pos := 0
	for pos < len(text) && len(res.Lines) < MaxLines {
		rem := len(text) - pos
		if rem <= cols {
			res.Lines = append(res.Lines, text[pos:])
			break
		}
		brk := cols
		for brk > 0 && text[pos+brk] != ' ' {
			brk--
		}
		if brk == 0 {
			brk = cols
		}
		res.Lines = append(res.Lines, text[pos:pos+brk])
		pos += brk
		if pos < len(text) && text[pos] == ' ' {
			pos++
		}
	}
	return res
}

// Count returns the number of wrapped lines.
func (r Result) Count() int { return len(r.Lines) }

// ScrollDown advances the cursor by one line if any line below the
// visible window remains, given how many lines the display shows.
func (r *Result) ScrollDown(visible int) {
	if r.Scroll+visible < len(r.Lines) {
		r.Scroll++
	}
}

// ScrollUp moves the cursor up one line.
func (r *Result) ScrollUp() {
	if r.Scroll > 0 {
		r.Scroll--
	}
}
