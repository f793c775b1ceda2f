// 26 May 2026
// Count the query blocks in a blast report without parsing it. For a
// big report this answers "how many queries were searched" long
// before the real parse would.

package numquery

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/andrew-torda/contig_count/pkg/blast"
	"github.com/edsrzf/mmap-go"
)

var queryMark = []byte("Query= ")

// countQueries counts query markers in a report held in memory. The
// count is textual. A "Query= " buried inside some other line would
// be counted too, but real reports do not do that.
func countQueries(b []byte) int { return bytes.Count(b, queryMark) }

// NqueryReader counts query markers from a stream. This is the path
// for input we cannot map, like stdin or a decompressor.
func NqueryReader(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += bytes.Count(scanner.Bytes(), queryMark)
	}
	return n, scanner.Err()
}

// Nquery counts the query blocks in a report file. Plain files are
// mapped and counted in place. Compressed files go through the
// decompressing reader instead, since a mapping would only show us
// gzip bytes. Mapping an empty file fails, but there the answer is
// already known.
func Nquery(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return 0, err
	} else if fi.Size() == 0 {
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	if len(mm) >= 2 && mm[0] == 0x1f && mm[1] == 0x8b { // gzip magic
		zp, err := blast.Open(fname)
		if err != nil {
			return 0, err
		}
		defer zp.Close()
		return NqueryReader(zp)
	}
	return countQueries(mm), nil
}
