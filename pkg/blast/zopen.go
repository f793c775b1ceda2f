// 22 May 2026
// Blast reports spend their lives sitting around compressed. Open
// gives the parser a transparent view of either form.

package blast

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
)

// A zFile is a report file with an optional decompressor on top.
type zFile struct {
	fp   *os.File
	zrdr *gzip.Reader
}

// Read comes from the compressed stream if there is one, otherwise
// straight from the file.
func (z *zFile) Read(p []byte) (int, error) {
	if z.zrdr != nil {
		return z.zrdr.Read(p)
	}
	return z.fp.Read(p)
}

// Close closes the decompressor, then the underlying file.
func (z *zFile) Close() error {
	if z.zrdr == nil {
		return z.fp.Close()
	}
	var s string
	if e := z.zrdr.Close(); e != nil {
		s = e.Error()
	}
	if e := z.fp.Close(); e != nil {
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Open opens a report file for reading. If the contents are gzipped,
// the returned reader decompresses on the way through, so nobody
// downstream has to care. Trying the decompressor eats a few bytes,
// which is why we seek back when the file turns out to be plain text.
func Open(fname string) (io.ReadCloser, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	z := &zFile{fp: fp}
	if z.zrdr, err = gzip.NewReader(fp); err == nil {
		return z, nil // It was compressed
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		fp.Close()
		return nil, err
	}
	return z, nil
}
