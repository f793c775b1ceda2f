// 23 May 2026
// Turning a match description into the key it is tallied under.

package contigcounter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// What a -key-fields argument has to look like. Digits, maybe more
// digits after commas. Checked before any file is touched.
var keyFieldPat = regexp.MustCompile(`^[0-9]+(,[0-9]+)*$`)

// A KeyFieldError says why a key could not be made. It carries the
// underlying cause when there is one.
type KeyFieldError struct {
	Msg string
	Err error
}

func (e *KeyFieldError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *KeyFieldError) Unwrap() error { return e.Err }

// ParseKeyFields turns the text of the -key-fields option into the
// list of 1-based field indices used for the rest of the run. An
// empty string means no selection, keys are whole descriptions.
func ParseKeyFields(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	if !keyFieldPat.MatchString(s) {
		return nil, &KeyFieldError{
			Msg: fmt.Sprintf("key fields must be digits separated by commas, not %q", s)}
	}
	var fields []int
	for _, t := range strings.Split(s, ",") {
		i, err := strconv.Atoi(t)
		if err != nil {
			return nil, &KeyFieldError{Msg: "key field " + t, Err: err}
		}
		if i < 1 {
			return nil, &KeyFieldError{
				Msg: fmt.Sprintf("key fields count from 1, got %d", i)}
		}
		fields = append(fields, i)
	}
	return fields, nil
}

// DeriveKey makes the tally key for one description. With no fields
// selected the key is the trimmed description. Otherwise the
// description is split on white space and the chosen fields are glued
// back together with single spaces, in the order they were asked
// for. Asking for a field the description does not have is an error.
// The caller decides what to fall back to.
func DeriveKey(desc string, fields []int) (string, error) {
	if len(fields) == 0 {
		return strings.TrimSpace(desc), nil
	}
	toks := strings.Fields(desc)
	picked := make([]string, 0, len(fields))
	for _, f := range fields {
		if f > len(toks) {
			return "", &KeyFieldError{
				Msg: fmt.Sprintf("key field %d wanted, description has %d fields", f, len(toks))}
		}
		picked = append(picked, toks[f-1])
	}
	return strings.Join(picked, " "), nil
}
