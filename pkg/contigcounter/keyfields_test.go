// 23 May 2026

package contigcounter_test

import (
	"errors"
	"testing"

	. "github.com/andrew-torda/contig_count/pkg/contigcounter"
)

func TestParseKeyFields(t *testing.T) {
	goods := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"1", []int{1}},
		{"1,3", []int{1, 3}},
		{"3,1,2", []int{3, 1, 2}},
		{"10,10", []int{10, 10}},
	}
	for _, x := range goods {
		got, err := ParseKeyFields(x.in)
		if err != nil {
			t.Fatal("in", x.in, "unexpected error", err)
		}
		if len(got) != len(x.want) {
			t.Fatal("in", x.in, "got", got, "want", x.want)
		}
		for i := range got {
			if got[i] != x.want[i] {
				t.Fatal("in", x.in, "got", got, "want", x.want)
			}
		}
	}
	bads := []string{"0", "a", "1,", ",1", "1,,2", "1, 2", "-1", "1.5"}
	for _, s := range bads {
		if _, err := ParseKeyFields(s); err == nil {
			t.Fatal("should not parse:", s)
		}
	}
	var kfe *KeyFieldError
	if _, err := ParseKeyFields("1,x"); !errors.As(err, &kfe) {
		t.Fatal("want a KeyFieldError, got", err)
	}
}

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		desc   string
		fields []int
		want   string
	}{
		{"alpha beta gamma delta", []int{1, 3}, "alpha gamma"},
		{"alpha beta gamma delta", []int{3, 1}, "gamma alpha"},
		{"  padded description  ", nil, "padded description"},
		{"one two", []int{2, 2}, "two two"},
		{"gi|7|ref| Homo sapiens", []int{1}, "gi|7|ref|"},
	}
	for _, x := range tests {
		got, err := DeriveKey(x.desc, x.fields)
		if err != nil {
			t.Fatal("desc", x.desc, "unexpected error", err)
		}
		if got != x.want {
			t.Fatal("desc", x.desc, "got", got, "want", x.want)
		}
	}
	// nine fields wanted, three there
	if _, err := DeriveKey("only three fields", []int{9}); err == nil {
		t.Fatal("out of range field should be an error")
	}
	var kfe *KeyFieldError
	if _, err := DeriveKey("a b", []int{3}); !errors.As(err, &kfe) {
		t.Fatal("want a KeyFieldError")
	}
}
