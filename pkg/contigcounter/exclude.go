// 23 May 2026
// Filtering hits whose descriptions mention terms the user does not
// want mixed into the main tally.

package contigcounter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// A Filter holds the exclusion terms, compiled once before the scan.
// Matching is a case-insensitive substring test anywhere in the raw
// description. The first term to match, in the order the terms were
// given, wins.
type Filter struct {
	terms []string // as supplied, excluded hits are tallied under these
	lows  []string // lower cased once, so each test is just a Contains
}

// CompileFilter builds a Filter from terms. Empty terms are dropped.
func CompileFilter(terms []string) *Filter {
	f := &Filter{}
	for _, t := range terms {
		if t == "" {
			continue
		}
		f.terms = append(f.terms, t)
		f.lows = append(f.lows, strings.ToLower(t))
	}
	return f
}

// LoadFilter reads exclusion terms from a file, one term per line.
// Blank lines mean nothing.
func LoadFilter(fname string) (*Filter, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("exclusion file: %w", err)
	}
	defer fp.Close()
	var terms []string
	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		terms = append(terms, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("exclusion file %v: %w", fname, err)
	}
	return CompileFilter(terms), nil
}

// Match returns the first term found in desc. A nil filter matches
// nothing, so callers do not have to care whether -exclude was given.
func (f *Filter) Match(desc string) (string, bool) {
	if f == nil {
		return "", false
	}
	low := strings.ToLower(desc)
	for i, t := range f.lows {
		if strings.Contains(low, t) {
			return f.terms[i], true
		}
	}
	return "", false
}
