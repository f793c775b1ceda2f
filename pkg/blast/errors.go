// Error values for the blast package. A readError remembers the line
// number and the line we were chewing on when reading broke, so the
// user has a chance of finding the spot in a big report.

package blast

import (
	"errors"
	"strconv"
)

// ErrNotBlast is returned by Scan when the whole input went by
// without a BLASTN header line. The caller decides how loudly to
// complain.
var ErrNotBlast = errors.New("file does not appear to be a BLAST result file")

const maxMsgLen = 70

type readError struct {
	n      int    // line number
	inline string // the line that provoked the error
	desc   string // description of what went wrong
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

// Error puts what we know into one string: the number of the last
// line read and the start of that line. fill() stored the details.
func (e readError) Error() string {
	errmsg := e.desc
	if e.n != 0 {
		errmsg = "line " + strconv.Itoa(e.n) + ": " + errmsg
		if e.inline != "" {
			errmsg += "\nline starting with: " + firstPart(e.inline)
		}
	}
	return errmsg
}
