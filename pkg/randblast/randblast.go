// 27 May 2026

// Package randblast writes made up blast reports for tests and
// benchmarks. Given the same seed it always writes the same report,
// and it tells the caller what a parse of that report has to find.
// The reports carry the usual boilerplate, references, lengths,
// alignment details, so a parser gets something to step over.
package randblast

import (
	"fmt"
	"io"
	"math/rand"
)

// Args is the set of knobs passed to the main function.
type Args struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where the report goes
	NQuery int       // number of query blocks
	NPool  int       // how many different matches to draw from
	MaxHit int       // most hit lines per query, at least one
	MkErr  bool      // give one top hit a score that will not parse
}

// matchDesc makes the description of match number i in the pool. The
// shape imitates what nucleotide searches return, pipes and all.
func matchDesc(i int) string {
	return fmt.Sprintf("gi|%d|ref|XM_%06d.1| Synthetic organism contig %d, mRNA",
		100000+i, i+1, i+1)
}

// wrtPreamble writes the part of a report that comes before the
// first query.
func wrtPreamble(w io.Writer) {
	fmt.Fprintln(w, "BLASTN 2.2.26+")
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Reference: Zheng Zhang, Scott Schwartz, Lukas Wagner, and Webb`)
	fmt.Fprintln(w, `Miller (2000), "A greedy algorithm for aligning DNA sequences", J`)
	fmt.Fprintln(w, `Comput Biol 2000; 7(1-2):203-14.`)
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Database: synthetic_contigs")
	fmt.Fprintln(w, "           1,000 sequences; 2,000,000 total letters")
	fmt.Fprintln(w)
}

// wrtQuery writes one query block. top is the pool index of the top
// hit and nhit is how many hit lines the block gets. bad poisons the
// top hit's score field.
func wrtQuery(w io.Writer, name string, top, nhit, npool int, rnd *rand.Rand, bad bool) {
	fmt.Fprintf(w, "Query= %s\n", name)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Length=%d\n", 200+rnd.Intn(800))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "                                                                      Score     E")
	fmt.Fprintln(w, "Sequences producing significant alignments:                          (Bits)  Value")
	fmt.Fprintln(w)

	score := 100 + rnd.Intn(900)
	expo := 30 + rnd.Intn(60)
	for i := 0; i < nhit; i++ {
		ndx := top
		if i > 0 {
			ndx = rnd.Intn(npool)
		}
		scoreStr := fmt.Sprintf("%d", score)
		if bad && i == 0 {
			scoreStr = "n/a"
		}
		fmt.Fprintf(w, "%-66s %6s   %7s\n", matchDesc(ndx), scoreStr,
			fmt.Sprintf("%de-%02d", 1+rnd.Intn(9), expo))
		score -= 1 + rnd.Intn(50)
		if expo > 2 {
			expo -= 1 + rnd.Intn(2)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "> %s\n", matchDesc(top))
	fmt.Fprintf(w, "Length=%d\n", 500+rnd.Intn(1500))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " Score =  %d bits (%d),  Expect = %de-%02d\n",
		score, score/2, 1+rnd.Intn(9), expo)
	fmt.Fprintln(w, " Identities = 76/76 (100%), Gaps = 0/76 (0%)")
	fmt.Fprintln(w, " Strand=Plus/Plus")
	fmt.Fprintln(w)
}

// wrtTrailer writes the statistics a report ends with.
func wrtTrailer(w io.Writer) {
	fmt.Fprintln(w, "Lambda      K        H")
	fmt.Fprintln(w, "    1.33    0.621     1.12")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Gapped")
	fmt.Fprintln(w, "Lambda      K        H")
	fmt.Fprintln(w, "    1.28    0.460     0.850")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Matrix: blastn matrix 1 -2")
	fmt.Fprintln(w, "Gap Penalties: Existence: 0, Extension: 2.5")
}

// RandBlastMain writes a report with args.NQuery query blocks and
// returns the tally a parse of that report has to produce: for each
// description, the number of queries with it as their top hit. A
// poisoned block (MkErr) is left out of the expected tally. The
// parser is supposed to warn about it and move on.
func RandBlastMain(args *Args) (map[string]int, error) {
	if args.NPool < 1 {
		args.NPool = 20
	}
	if args.MaxHit < 1 {
		args.MaxHit = 5
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	errAt := -1
	if args.MkErr {
		errAt = args.NQuery / 2
	}

	expect := make(map[string]int)
	wrtPreamble(args.Wrtr)
	for i := 0; i < args.NQuery; i++ {
		name := fmt.Sprintf("contig_%04d", i+1)
		top := rnd.Intn(args.NPool)
		nhit := 1 + rnd.Intn(args.MaxHit)
		bad := i == errAt
		wrtQuery(args.Wrtr, name, top, nhit, args.NPool, rnd, bad)
		if !bad {
			expect[matchDesc(top)]++
		}
	}
	wrtTrailer(args.Wrtr)
	return expect, nil
}
