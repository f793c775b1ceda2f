// 23 May 2026

/*
Contigcounter reads a blast result file and tabulates, across all the
queries in the file, the number of times each match was the top hit.

Usage:
	contigcounter [options] blast_result_file [outfile]

The result file is the standard pairwise text report. It can be
gzipped, that is handled quietly. The report with the tallies goes
to outfile, or to standard output if outfile is missing or "-".

Flags:
	-debug
		narrate the walk through the file, the header, each query,
		each tally. The numbers do not change.
	-key-fields 2,1
		instead of tallying whole match descriptions, split each
		description on white space and build the tally key from
		these fields, counting from 1, in the given order. If a
		description is too short for the fields asked for, the whole
		description is used and a warning counted.
	-exclude filename
		read terms from filename, one per line. A hit whose
		description contains one of the terms, upper or lower case,
		is kept out of the main tally and counted under the term
		instead. Excluded terms get their own table at the end of
		the report.

After the tally table the report carries a short summary: lines read,
query blocks, top hits, distinct matches, the mean number of hits per
match and the standard deviation over matches, and how many warnings
came up.

A file with no BLASTN header line anywhere is not considered a blast
result file. Nothing is tallied and the exit status is not zero.
*/
package main
