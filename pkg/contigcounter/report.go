// 25 May 2026
// The final printout. Names longer than the match column stick out
// rather than being cut off. A truncated sequence description is
// useless.

package contigcounter

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Width of the match column.
const descWidth = 81

type keyedEntry struct {
	key string
	e   *Entry
}

// sortedEntries flattens a tally for printing, most hits first, ties
// in key order, so the same input always prints the same report.
func sortedEntries(t Tally) []keyedEntry {
	pairs := make([]keyedEntry, 0, len(t))
	for k, e := range t {
		pairs = append(pairs, keyedEntry{key: k, e: e})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].e.Count != pairs[j].e.Count {
			return pairs[i].e.Count > pairs[j].e.Count
		}
		return pairs[i].key < pairs[j].key
	})
	return pairs
}

func dashes(n int) string { return strings.Repeat("-", n) }

// RunTotals carries the scan counters into the summary block.
type RunTotals struct {
	Lines    int // physical lines read
	Queries  int // query blocks seen
	Warnings int // skipped records plus key fallbacks
}

// WriteReport writes the tallied matches, the summary and, if any
// hits were filtered out, the excluded terms. fp is wherever the
// caller wants the report to go, a file or stdout.
func WriteReport(fp io.Writer, c *Counter, tot RunTotals) error {
	if _, err := fmt.Fprint(fp, "\n===== FINAL REPORT =====\n\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(fp, "%-*s  %5s  %11s  %9s  %11s\n", descWidth, "Match",
		"#Hits", "Total Score", "Avg Score", "Avg E-value")
	fmt.Fprintf(fp, "%s  %s  %s  %s  %s\n\n", dashes(descWidth), dashes(5),
		dashes(11), dashes(9), dashes(11))
	for _, p := range sortedEntries(c.Results) {
		fmt.Fprintf(fp, "%-*s  %5d  %11.1f  %9.1f  %11.3g\n", descWidth,
			p.key, p.e.Count, p.e.ScoreSum(), p.e.ScoreAvg(), p.e.EvalueAvg())
	}

	s := Summarize(c.Results)
	fmt.Fprint(fp, "\n===== SUMMARY =====\n\n")
	fmt.Fprintf(fp, "%-20s %8d\n", "Lines read:", tot.Lines)
	fmt.Fprintf(fp, "%-20s %8d\n", "Query blocks:", tot.Queries)
	fmt.Fprintf(fp, "%-20s %8d\n", "Top hits tallied:", s.Total+c.Excluded.Total())
	fmt.Fprintf(fp, "%-20s %8d\n", "Distinct matches:", s.Distinct)
	fmt.Fprintf(fp, "%-20s %8.2f\n", "Mean hits per match:", s.Mean)
	fmt.Fprintf(fp, "%-20s %8.2f\n", "Std deviation:", s.StdDev)
	fmt.Fprintf(fp, "%-20s %8d\n", "Warnings:", tot.Warnings)

	if len(c.Excluded) > 0 {
		fmt.Fprint(fp, "\n===== EXCLUDED TERMS =====\n\n")
		fmt.Fprintf(fp, "%-*s  %5s\n", descWidth, "Term", "#Hits")
		fmt.Fprintf(fp, "%s  %s\n\n", dashes(descWidth), dashes(5))
		for _, p := range sortedEntries(c.Excluded) {
			fmt.Fprintf(fp, "%-*s  %5d\n", descWidth, p.key, p.e.Count)
		}
	}
	fmt.Fprintln(fp)
	return nil
}
