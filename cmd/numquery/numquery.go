// 26 May 2026

// Count the query blocks in blast result files. One count per file.
// This is the quick check before firing off the real tally.

package main

import (
	"fmt"
	"os"

	. "github.com/andrew-torda/contig_count/pkg/common"
	"github.com/andrew-torda/contig_count/pkg/numquery"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "blast_result_file ...")
	fmt.Fprintln(os.Stderr, `Use "-" to read from stdin.`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	ret := ExitSuccess
	for _, fname := range os.Args[1:] {
		var n int
		var err error
		if fname == "-" {
			n, err = numquery.NqueryReader(os.Stdin)
		} else {
			n, err = numquery.Nquery(fname)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, fname, err)
			ret = ExitFailure
			continue
		}
		fmt.Println(fname, n)
	}
	os.Exit(ret)
}
