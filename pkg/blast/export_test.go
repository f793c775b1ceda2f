package blast

// Export some internal functions for testing

var (
	MatchHeader     = matchHeader
	MatchQuery      = matchQuery
	MatchHitSection = matchHitSection
	SplitHitLine    = splitHitLine
	ParseNum        = parseNum
	NewLineScanner  = newLineScanner
)

func (s *lineScanner) Lscan() bool  { return s.lscan() }
func (s *lineScanner) Line() string { return string(s.line) }
func (s *lineScanner) N() int       { return s.n }
