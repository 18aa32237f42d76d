package corpus

import (
	"bufio"
	"io"
	"os"
)

// maxLineLen bounds the scratch buffer for one record line. Longer
// lines are truncated to this many bytes; the remainder up to the
// newline is consumed but never stored.
const maxLineLen = 320

// lineReader walks a file forward one line at a time while tracking
// the exact byte offset each line starts at. Blank-line and EOF
// detection are distinct results, so callers never need to probe ahead
// to tell them apart.
type lineReader struct {
	br  *bufio.Reader
	off int64  // offset of the next unread byte
	buf []byte // scratch, reused across lines
}

// newLineReader positions f at off and prepares to read lines from
// there. The reader owns f's cursor until it is abandoned.
func newLineReader(f *os.File, off int64) (*lineReader, error) {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return nil, err
	}
	return &lineReader{
		br:  bufio.NewReaderSize(f, maxLineLen),
		off: off,
		buf: make([]byte, 0, maxLineLen),
	}, nil
}

// next returns the next line with CR and LF stripped, truncated to
// maxLineLen bytes, and the byte offset of its first byte. ok is false
// only when the file is exhausted; a blank line is ok with an empty
// result. The returned slice is valid until the following call.
func (lr *lineReader) next() (line []byte, start int64, ok bool, err error) {
	start = lr.off
	lr.buf = lr.buf[:0]
	sawByte := false

	for {
		b, rerr := lr.br.ReadByte()
		if rerr == io.EOF {
			if !sawByte {
				return nil, start, false, nil
			}
			return lr.buf, start, true, nil
		}
		if rerr != nil {
			return nil, start, false, rerr
		}
		lr.off++
		sawByte = true
		if b == '\n' {
			return lr.buf, start, true, nil
		}
		if b == '\r' {
			continue
		}
		if len(lr.buf) < maxLineLen {
			lr.buf = append(lr.buf, b)
		}
	}
}
