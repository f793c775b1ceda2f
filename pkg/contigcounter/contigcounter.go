// 23 May 2026

// Package contigcounter counts, over all the query sequences in a
// blast report, how often each match turned up as the top hit. The
// tally can be keyed on chosen fields of the match description, and
// hits whose descriptions mention unwanted terms can be diverted to
// a separate tally.
package contigcounter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrew-torda/contig_count/pkg/blast"
	. "github.com/andrew-torda/contig_count/pkg/common"
)

const Version = "2.0"

// CmdFlag holds the command line options, filled out by the caller.
type CmdFlag struct {
	Debug     bool   // narrate the walk through the report
	KeyFields string // which description fields form the tally key
	Exclude   string // file of terms that divert a hit to its own tally
}

// A Counter turns top hits into tallies. The parser does not know
// about keys or excluded terms. This does.
type Counter struct {
	Results  Tally
	Excluded Tally
	Fields   []int     // 1-based description fields forming the key
	Filter   *Filter   // nil when -exclude was not given
	Debug    io.Writer // narration of tally decisions
	Log      io.Writer // warnings when a key cannot be derived
	NWarn    int       // how often we fell back to the whole description
}

// NewCounter returns a Counter with empty tallies. The writers start
// out silent.
func NewCounter(fields []int, filter *Filter) *Counter {
	return &Counter{
		Results:  make(Tally),
		Excluded: make(Tally),
		Fields:   fields,
		Filter:   filter,
		Debug:    io.Discard,
		Log:      io.Discard,
	}
}

// Take records one top hit. line is where the hit was found, for
// warnings. An excluded hit is tallied under the term that matched
// it and never reaches the key extraction. A hit whose description
// does not have the wanted key fields is tallied under the whole
// description, with a warning. It is not thrown away.
func (c *Counter) Take(rec blast.HitRecord, line int) {
	if term, ok := c.Filter.Match(rec.Desc); ok {
		c.Excluded.Record(term, rec.Score, rec.EValue)
		fmt.Fprintf(c.Debug, "Excluding hit, term %q found in %s\n", term, rec.Desc)
		return
	}
	key, err := DeriveKey(rec.Desc, c.Fields)
	if err != nil {
		c.NWarn++
		fmt.Fprintf(c.Log, "Warning, line %d, %v. Using the whole description: %s\n",
			line, err, rec.Desc)
		key = strings.TrimSpace(rec.Desc)
	}
	c.Results.Record(key, rec.Score, rec.EValue)
	fmt.Fprintf(c.Debug, "Tally added for %s\n", key)
}

// warnExists checks if a filename exists and prints a warning if we
// will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// writeReportTo sends the report to outfile. If there is no filename
// or the filename is "-", it goes to standard output.
func writeReportTo(outfile string, c *Counter, tot RunTotals) error {
	var fp io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		warnExists(outfile)
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer f.Close()
		fp = f
	}
	return WriteReport(fp, c, tot)
}

// Mymain is the main function for tallying top hits, after command
// line parsing. It returns the process exit status instead of calling
// os.Exit, so tests can drive it.
func Mymain(flags *CmdFlag, infile, outfile string) int {
	fmt.Printf("\nContig Counter v%s\n", Version)

	fields, err := ParseKeyFields(flags.KeyFields)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsageError
	}
	var filter *Filter
	if flags.Exclude != "" {
		if filter, err = LoadFilter(flags.Exclude); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitFailure
		}
	}

	fp, err := blast.Open(infile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to open file", infile)
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	defer fp.Close()

	c := NewCounter(fields, filter)
	c.Log = os.Stdout
	rdr := blast.NewReader(fp)
	rdr.SetLog(os.Stdout)
	if flags.Debug {
		rdr.SetDebug(os.Stdout)
		c.Debug = os.Stdout
	}

	if err := rdr.Scan(c.Take); err != nil {
		if err == blast.ErrNotBlast {
			fmt.Println("*** WARNING: File does not appear to be a BLAST result file.  Nothing processed.")
			fmt.Println()
			return ExitFailure
		}
		fmt.Fprintln(os.Stderr, "Reading", infile+":", err)
		return ExitFailure
	}

	tot := RunTotals{
		Lines:    rdr.NLine(),
		Queries:  rdr.NQuery(),
		Warnings: rdr.NWarn() + c.NWarn,
	}
	if err := writeReportTo(outfile, c, tot); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}
