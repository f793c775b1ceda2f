// 19 May 2026
// The shapes of the lines we care about in a pairwise text report.
// Classification is context free. The parser states decide which
// shapes mean anything at a given moment.

package blast

import "bytes"

var (
	hdrMark   = []byte("BLASTN")
	queryMark = []byte("Query= ")
	hitsMark  = []byte("Sequences producing significant alignments:")
)

// matchHeader says whether a line is the format header, the word
// BLASTN after optional leading white space.
func matchHeader(line []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(line, asciiWhite), hdrMark)
}

// matchQuery pulls the query name out of a "Query= " line. The name
// is only used for narration, so it gets trimmed.
func matchQuery(line []byte) (string, bool) {
	t := bytes.TrimLeft(line, asciiWhite)
	if !bytes.HasPrefix(t, queryMark) {
		return "", false
	}
	return string(bytes.Trim(t[len(queryMark):], asciiWhite)), true
}

// matchHitSection says whether a line announces the list of hits for
// a query. The marker only counts in the first column.
func matchHitSection(line []byte) bool {
	return bytes.HasPrefix(line, hitsMark)
}

// rsplit cuts the last white-separated token off b. rest keeps any
// white space in front of the cut.
func rsplit(b []byte) (rest, tok []byte) {
	b = bytes.TrimRight(b, asciiWhite)
	i := bytes.LastIndexAny(b, asciiWhite)
	if i < 0 {
		return nil, b
	}
	return b[:i], b[i+1:]
}

// splitHitLine takes a candidate hit line apart from the right. The
// last token is the e-value, the one before it the score, and what is
// left over, trimmed at both ends, is the description. Spacing inside
// the description is kept. It is part of the name being tallied.
// ok is false if the line does not have all three pieces.
func splitHitLine(line []byte) (desc, score, evalue []byte, ok bool) {
	rest, evalue := rsplit(line)
	rest, score = rsplit(rest)
	desc = bytes.Trim(rest, asciiWhite)
	if len(desc) == 0 || len(score) == 0 || len(evalue) == 0 {
		return nil, nil, nil, false
	}
	return desc, score, evalue, true
}
