// 28 May 2026

package numquery_test

import (
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/contig_count/pkg/common"
	. "github.com/andrew-torda/contig_count/pkg/numquery"
)

var little = `BLASTN 2.2.26+

Query= q1
stuff
Query= q2
more stuff
Query= q3
`

func TestNquery(t *testing.T) {
	fname, err := common.WrtTemp(little)
	if err != nil {
		t.Fatal("writing test file:", err)
	}
	defer os.Remove(fname)
	n, err := Nquery(fname)
	if err != nil {
		t.Fatal("counting:", err)
	}
	if n != 3 {
		t.Fatal("count got", n, "want 3")
	}
}

// A gzipped report has to give the same count as a plain one, even
// though the mapped bytes are compression rubbish.
func TestNqueryGz(t *testing.T) {
	fname, err := common.WrtTempGz(little)
	if err != nil {
		t.Fatal("writing gz test file:", err)
	}
	defer os.Remove(fname)
	n, err := Nquery(fname)
	if err != nil {
		t.Fatal("counting gz:", err)
	}
	if n != 3 {
		t.Fatal("gz count got", n, "want 3")
	}
}

func TestNqueryEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal("writing empty file:", err)
	}
	defer os.Remove(fname)
	n, err := Nquery(fname)
	if err != nil {
		t.Fatal("empty file:", err)
	}
	if n != 0 {
		t.Fatal("empty file count got", n, "want 0")
	}
}

func TestNqueryReader(t *testing.T) {
	n, err := NqueryReader(strings.NewReader(little))
	if err != nil {
		t.Fatal("reader path:", err)
	}
	if n != 3 {
		t.Fatal("reader count got", n, "want 3")
	}
}

func TestNqueryNoFile(t *testing.T) {
	if _, err := Nquery("/no/such/report/file"); err == nil {
		t.Fatal("missing file should be an error")
	}
}
