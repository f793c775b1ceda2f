// 24 May 2026

package contigcounter

// An Entry is everything we keep for one key: how often it was the
// top hit, plus the scores and e-values that came with it, in file
// order. Count always equals len(Scores) and len(Evalues).
type Entry struct {
	Count   int
	Scores  []float64
	Evalues []float64
}

// A Tally maps keys to their entries. Each run uses two, one for the
// results proper and one for the excluded terms.
type Tally map[string]*Entry

// Record adds one top hit under key. The first time a key shows up
// its entry is created, after that the counter and the lists grow.
// Entries are never removed during a run.
func (t Tally) Record(key string, score, evalue float64) {
	e, ok := t[key]
	if !ok {
		e = &Entry{}
		t[key] = e
	}
	e.Count++
	e.Scores = append(e.Scores, score)
	e.Evalues = append(e.Evalues, evalue)
}

// Total is the number of hits recorded over all keys.
func (t Tally) Total() int {
	var n int
	for _, e := range t {
		n += e.Count
	}
	return n
}

// ScoreSum is the arithmetic sum of the entry's scores.
func (e *Entry) ScoreSum() float64 {
	var sum float64
	for _, s := range e.Scores {
		sum += s
	}
	return sum
}

// ScoreAvg is the mean score.
func (e *Entry) ScoreAvg() float64 { return e.ScoreSum() / float64(e.Count) }

// EvalueAvg is the mean e-value.
func (e *Entry) EvalueAvg() float64 {
	var sum float64
	for _, v := range e.Evalues {
		sum += v
	}
	return sum / float64(e.Count)
}
