// 23 May 2026
// Read a blast result file and tabulate the top hits over all the
// queries in it.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/contig_count/pkg/common"
	"github.com/andrew-torda/contig_count/pkg/contigcounter"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[options] blast_result_file [outfile]")
	long := `The result file may be plain or gzipped.
The report goes to outfile, or to stdout if outfile is missing or "-".`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags contigcounter.CmdFlag
	var infile, outfile string

	flag.BoolVar(&flags.Debug, "debug", false, "narrate the walk through the report")
	flag.StringVar(&flags.KeyFields, "key-fields", "",
		"description fields forming the tally key, like 2,1")
	flag.StringVar(&flags.Exclude, "exclude", "",
		"file of terms whose hits are tallied separately")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	infile = flag.Arg(0)
	if flag.NArg() > 1 {
		outfile = flag.Arg(1)
	}

	os.Exit(contigcounter.Mymain(&flags, infile, outfile))
}
