package transform

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// UnsupportedCompressionError reports a compression tag the opener does not
// recognize. It is returned before any data is read.
type UnsupportedCompressionError struct {
	Compression string
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("cannot open file with %q compression", e.Compression)
}

// gzipReadCloser closes both the gzip stream and the underlying file
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// OpenFile opens a data file for reading. compression is "" or "none" for a
// plain file and "gz" or "gzip" for a gzip-compressed one; any other value
// fails with UnsupportedCompressionError. The caller closes the result.
func OpenFile(path, compression string) (io.ReadCloser, error) {
	switch compression {
	case "", "none":
		return os.Open(path)
	case "gz", "gzip":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
		}
		return &gzipReadCloser{Reader: zr, file: f}, nil
	default:
		return nil, &UnsupportedCompressionError{Compression: compression}
	}
}
