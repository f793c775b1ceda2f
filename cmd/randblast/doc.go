// 27 May 2026

/*
Randblast writes a made up blast result file for testing and
benchmarking the tally code.

Usage:
	randblast [options] [outfile]

will write a report to outfile, or to standard output if outfile is
missing or "-".

Flags:
	-n N
		number of query blocks to write
	-p N
		size of the pool of match descriptions the top hits are
		drawn from. Smaller pools mean more repeated top hits.
	-m N
		most hit lines per query. Every query gets at least one.
	-s N
		random number seed. The same seed writes the same report.
	-e
		poison one top hit with a score that will not parse, to
		see warnings handled.

The content imitates nucleotide searches, including the reference
block, per-hit alignment details and the closing statistics, so a
parser gets realistic rubbish to step over.
*/
package main
