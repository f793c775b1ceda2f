// 21 May 2026
// The state machine lives here. One function per state. Each state
// reads lines until it sees the shape it is waiting for. Anything
// else is report boilerplate and gets ignored.

// Package blast extracts top hits from the pairwise text report
// written by blast searches. For each query block we keep the first
// line of its "Sequences producing significant alignments" list: the
// description, the score and the e-value. A Reader walks the report
// once, hands every top hit to a callback and counts what it saw on
// the way.
package blast

import (
	"fmt"
	"io"
	"strconv"
)

// A HitRecord is one query's top hit.
type HitRecord struct {
	Desc   string // raw description, trimmed at both ends
	Score  float64
	EValue float64
}

// A Reader extracts top hits from one report. Get one from NewReader,
// point SetDebug or SetLog somewhere if you want to watch it work,
// then call Scan.
type Reader struct {
	lineScanner
	debug  io.Writer // narration of state changes
	log    io.Writer // warnings about records we had to skip
	query  string    // name from the last Query= line, for narration
	emit   func(HitRecord, int)
	gotHdr bool
	nquery int
	nhit   int
	nwarn  int
}

// NewReader returns a Reader pulling from r. It is given a reader, so
// the caller has already decided about files, compression and such.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		return nil
	}
	return &Reader{
		lineScanner: newLineScanner(r),
		debug:       io.Discard,
		log:         io.Discard,
	}
}

// SetDebug sends narration of the walk (header found, query seen,
// hits tabulated) to w. The results do not change.
func (r *Reader) SetDebug(w io.Writer) { r.debug = w }

// SetLog sends warnings about skipped records to w.
func (r *Reader) SetLog(w io.Writer) { r.log = w }

func (r *Reader) NLine() int  { return r.n }      // physical lines read
func (r *Reader) NQuery() int { return r.nquery } // query markers seen
func (r *Reader) NHit() int   { return r.nhit }   // top hits emitted
func (r *Reader) NWarn() int  { return r.nwarn }  // records skipped

// parseNum handles the numbers on a hit line. Scores are usually
// plain integers and e-values usually look like 1e-45, so try the
// integer parse first and fall back to float.
func parseNum(tok []byte) (float64, error) {
	s := string(tok)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), nil
	}
	return strconv.ParseFloat(s, 64)
}

// stateFn is the type of a state function. It returns the state that
// should act on the rest of the input.
type stateFn func(*Reader) stateFn

// stateHeader looks for the BLASTN header. It does not have to be the
// first line, so we keep looking to the end of the input.
func stateHeader(r *Reader) stateFn {
	for r.lscan() {
		if matchHeader(r.line) {
			r.gotHdr = true
			fmt.Fprintf(r.debug, "Found file header: %s -- OK\n", r.line)
			return stateQuery
		}
	}
	return nil
}

// stateQuery looks for the start of the next query block.
func stateQuery(r *Reader) stateFn {
	for r.lscan() {
		if name, ok := matchQuery(r.line); ok {
			r.query = name
			r.nquery++
			fmt.Fprintf(r.debug, "At query %s\n", name)
			return stateSection
		}
	}
	return nil
}

// stateSection jumps over a query's alignment boilerplate until the
// list of hits is announced.
func stateSection(r *Reader) stateFn {
	for r.lscan() {
		if matchHitSection(r.line) {
			fmt.Fprintf(r.debug, "Tabulating top hit for query %s\n", r.query)
			return stateHit
		}
	}
	return nil
}

// stateHit takes the first line shaped like a hit. That is the top
// hit for the current query. If one of its numbers does not parse,
// the query block is skipped with a warning and we move on to the
// next one. Either way a query block yields at most one record.
func stateHit(r *Reader) stateFn {
	for r.lscan() {
		desc, score, evalue, ok := splitHitLine(r.line)
		if !ok {
			continue
		}
		sc, err := parseNum(score)
		if err == nil {
			var ev float64
			if ev, err = parseNum(evalue); err == nil {
				r.nhit++
				r.emit(HitRecord{Desc: string(desc), Score: sc, EValue: ev}, r.n)
				return stateQuery
			}
		}
		r.nwarn++
		fmt.Fprintf(r.log, "Warning, line %d, skipping query %s. Top hit has an unparseable number: %s\n",
			r.n, r.query, r.line)
		return stateQuery
	}
	return nil
}

// Scan walks the whole report and calls hit once per query block that
// produced a parseable top hit, with the record and the line number
// it came from. If the input runs out without a header line ever
// appearing, the return is ErrNotBlast and hit was never called.
// Read errors come back wrapped with the line number where reading
// broke.
func (r *Reader) Scan(hit func(rec HitRecord, line int)) error {
	if hit == nil {
		hit = func(HitRecord, int) {}
	}
	r.emit = hit
	for state := stateHeader; state != nil; {
		state = state(r)
	}
	if r.err != nil {
		return r.err
	}
	if !r.gotHdr {
		return ErrNotBlast
	}
	return nil
}
