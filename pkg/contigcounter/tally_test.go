// 23 May 2026

package contigcounter_test

import (
	"testing"

	. "github.com/andrew-torda/contig_count/pkg/contigcounter"
)

func TestTally(t *testing.T) {
	tly := Tally{}
	tly.Record("a", 10, 1e-5)
	tly.Record("b", 20, 1e-6)
	tly.Record("a", 30, 1e-7)
	for key, e := range tly {
		if e.Count != len(e.Scores) || e.Count != len(e.Evalues) {
			t.Fatal("count out of step with samples for", key)
		}
	}
	a := tly["a"]
	if a.Count != 2 {
		t.Fatal("entry a count got", a.Count, "want", 2)
	}
	if a.Scores[0] != 10 || a.Scores[1] != 30 {
		t.Fatal("entry a scores got", a.Scores)
	}
	if a.ScoreSum() != 40 {
		t.Fatal("score sum got", a.ScoreSum(), "want", 40)
	}
	if a.ScoreAvg() != 20 {
		t.Fatal("score avg got", a.ScoreAvg(), "want", 20)
	}
	if tly.Total() != 3 {
		t.Fatal("total got", tly.Total(), "want", 3)
	}
}

func TestTallyEmpty(t *testing.T) {
	tly := Tally{}
	if tly.Total() != 0 {
		t.Fatal("empty tally total got", tly.Total())
	}
}
