// 14 May 2026
// Bits shared by the commands and by lots of tests. Keep it boring.

package common

import (
	"compress/gzip"
	"fmt"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns the
// filename. Tests use it instead of carting testdata files around.
// The caller removes the file.
func WrtTemp(s string) (string, error) {
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile: %w", err)
	}
	name := fp.Name()
	if _, err := fp.WriteString(s); err != nil {
		fp.Close()
		return "", fmt.Errorf("writing to temp file %v: %w", name, err)
	}
	return name, fp.Close()
}

// WrtTempGz is WrtTemp, but the contents are gzipped. We need it to
// check that compressed blast reports are handled like plain ones.
func WrtTempGz(s string) (string, error) {
	fp, err := os.CreateTemp("", "_del_me_testing_gz")
	if err != nil {
		return "", fmt.Errorf("tempfile: %w", err)
	}
	name := fp.Name()
	zw := gzip.NewWriter(fp)
	if _, err := zw.Write([]byte(s)); err != nil {
		fp.Close()
		return "", fmt.Errorf("writing to temp file %v: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		fp.Close()
		return "", err
	}
	return name, fp.Close()
}
