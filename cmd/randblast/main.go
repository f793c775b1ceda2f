// 27 May 2026

package main

import (
	"flag"
	"fmt"
	"os"

	. "github.com/andrew-torda/contig_count/pkg/common"
	"github.com/andrew-torda/contig_count/pkg/randblast"
)

func main() {
	f := flag.NewFlagSet("randblast", flag.ExitOnError)
	const iseed int64 = 1637
	var args randblast.Args

	f.IntVar(&args.NQuery, "n", 100, "number of query blocks")
	f.IntVar(&args.NPool, "p", 20, "size of the pool of match descriptions")
	f.IntVar(&args.MaxHit, "m", 5, "most hit lines per query")
	f.Int64Var(&args.Iseed, "s", iseed, "random number seed")
	f.BoolVar(&args.MkErr, "e", false, "poison one top hit score")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() > 1 {
		fmt.Fprintln(f.Output(), "too many args\nrandblast [options] [outfile]")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	args.Wrtr = os.Stdout
	if f.NArg() == 1 && f.Arg(0) != "-" {
		ft, err := os.Create(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		defer ft.Close()
		args.Wrtr = ft
	}

	if _, err := randblast.RandBlastMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
