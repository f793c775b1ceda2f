// 19 May 2026

package blast

import (
	"bufio"
	"bytes"
	"io"
)

// White space we expect inside a report line. Newlines never make it
// this far, the library scanner eats them.
const asciiWhite = " \t\v\f\r"

// lineScanner wraps bufio.Scanner. It strips trailing white space,
// jumps over blank lines and counts every physical line it sees, so
// error and warning messages can point at the right place in the
// report. Blank lines mean nothing anywhere in a blast report, which
// is why they are handled here and not in the parser states.
type lineScanner struct {
	*bufio.Scanner
	line []byte // current line, right trimmed; nil once input is done
	n    int    // number of the current line, counting from 1
	err  error  // a readError once something real breaks
}

func newLineScanner(r io.Reader) lineScanner {
	return lineScanner{Scanner: bufio.NewScanner(r)}
}

// lscan advances to the next non-blank line. It returns false at end
// of input or on a read error. After false, s.err says whether it was
// an error or just the end.
func (s *lineScanner) lscan() bool {
	if s.err != nil {
		return false
	}
	for s.Scan() {
		s.n++
		b := bytes.TrimRight(s.Bytes(), asciiWhite)
		if len(b) == 0 {
			continue
		}
		s.line = b
		return true
	}
	s.line = nil
	if e := s.Err(); e != nil {
		s.fill(e.Error())
	}
	return false
}

// fill records the problem for reporting once scanning stops.
func (s *lineScanner) fill(desc string) {
	s.err = readError{n: s.n, inline: string(s.line), desc: desc}
}
