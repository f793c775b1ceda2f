// 25 May 2026

package contigcounter_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	. "github.com/andrew-torda/contig_count/pkg/contigcounter"
)

func TestReport(t *testing.T) {
	c := NewCounter(nil, nil)
	add := func(key string, n int) {
		for i := 0; i < n; i++ {
			c.Results.Record(key, 100, 1e-10)
		}
	}
	add("popular", 3)
	add("middling", 2)
	add("cherry", 2)
	add("banana", 2)
	add("rare", 1)

	var buf bytes.Buffer
	if err := WriteReport(&buf, c, RunTotals{Lines: 42, Queries: 10}); err != nil {
		t.Fatal("writing report:", err)
	}
	rep := buf.String()

	if !strings.Contains(rep, "===== FINAL REPORT =====") {
		t.Fatal("report banner missing")
	}
	hdr := fmt.Sprintf("%-81s  %5s  %11s  %9s  %11s\n", "Match",
		"#Hits", "Total Score", "Avg Score", "Avg E-value")
	if !strings.Contains(rep, hdr) {
		t.Fatal("column header missing:\n", rep)
	}
	// most hits first, ties in key order
	want := []string{"popular", "banana", "cherry", "middling", "rare"}
	prev := -1
	for _, key := range want {
		at := strings.Index(rep, "\n"+key)
		if at < 0 {
			t.Fatal("key missing from report:", key)
		}
		if at <= prev {
			t.Fatal("key out of order:", key)
		}
		prev = at
	}
	row := fmt.Sprintf("%-81s  %5d  %11.1f  %9.1f  %11.3g\n",
		"popular", 3, 300.0, 100.0, 1e-10)
	if !strings.Contains(rep, row) {
		t.Fatal("row not formatted as expected:\n", rep)
	}
	if !strings.Contains(rep, fmt.Sprintf("%-20s %8d\n", "Lines read:", 42)) {
		t.Fatal("lines read missing:\n", rep)
	}
	if !strings.Contains(rep, fmt.Sprintf("%-20s %8d\n", "Top hits tallied:", 10)) {
		t.Fatal("tally total missing:\n", rep)
	}
	if !strings.Contains(rep, fmt.Sprintf("%-20s %8.2f\n", "Mean hits per match:", 2.0)) {
		t.Fatal("mean missing:\n", rep)
	}
	if !strings.Contains(rep, fmt.Sprintf("%-20s %8.2f\n", "Std deviation:", 0.71)) {
		t.Fatal("std deviation missing:\n", rep)
	}
	if strings.Contains(rep, "EXCLUDED TERMS") {
		t.Fatal("excluded section printed with nothing excluded")
	}
}

func TestReportExcluded(t *testing.T) {
	c := NewCounter(nil, nil)
	c.Results.Record("kept thing", 50, 1e-5)
	c.Excluded.Record("mitochondrial", 10, 1e-3)
	c.Excluded.Record("mitochondrial", 20, 1e-3)

	var buf bytes.Buffer
	if err := WriteReport(&buf, c, RunTotals{Lines: 30, Queries: 3}); err != nil {
		t.Fatal("writing report:", err)
	}
	rep := buf.String()
	if !strings.Contains(rep, "===== EXCLUDED TERMS =====") {
		t.Fatal("excluded section missing:\n", rep)
	}
	if !strings.Contains(rep, fmt.Sprintf("%-81s  %5d\n", "mitochondrial", 2)) {
		t.Fatal("excluded row missing:\n", rep)
	}
	// excluded hits still count towards the tally total
	if !strings.Contains(rep, fmt.Sprintf("%-20s %8d\n", "Top hits tallied:", 3)) {
		t.Fatal("tally total wrong:\n", rep)
	}
}
