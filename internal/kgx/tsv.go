package kgx

import (
	"bufio"
	"io"
	"strings"
)

// The TSV dialect shared by the annotation sources and the merge tooling:
// tab delimited, no quoting (every character is literal), backslash as the
// escape character, spaces immediately after a delimiter ignored on read.
const (
	delimiter  = '\t'
	escapeChar = '\\'
)

// maxLineSize bounds a single annotation line; some sources carry long
// free-text fields.
const maxLineSize = 1 << 20

// Reader yields delimiter-separated records from a line-oriented stream,
// optionally skipping a fixed metadata preamble first.
type Reader struct {
	scanner *bufio.Scanner
	skip    int
}

// NewReader wraps r. The first skipLines lines are discarded before any
// record is returned.
func NewReader(r io.Reader, skipLines int) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner, skip: skipLines}
}

// Read returns the next record, or io.EOF when the stream is exhausted.
func (r *Reader) Read() ([]string, error) {
	for r.skip > 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		r.skip--
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return splitRecord(r.scanner.Text()), nil
}

// splitRecord splits one line into fields. A backslash strips any special
// meaning from the following character; spaces directly after a delimiter
// are dropped.
func splitRecord(line string) []string {
	var fields []string
	var field strings.Builder
	skipSpace := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		if skipSpace {
			if c == ' ' {
				continue
			}
			skipSpace = false
		}
		switch c {
		case escapeChar:
			if i+1 < len(line) {
				i++
				field.WriteByte(line[i])
			} else {
				// dangling escape at end of line, keep it literal
				field.WriteByte(c)
			}
		case delimiter:
			fields = append(fields, field.String())
			field.Reset()
			skipSpace = true
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}

// Writer writes records in the same dialect the Reader consumes, so the
// output round-trips through the source ecosystem's tooling.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer emitting to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record followed by a newline
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(delimiter); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(escapeField(field)); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// escapeField prefixes the delimiter, the escape character, and line breaks
// with the escape character. There is no quoting in this dialect.
func escapeField(field string) string {
	if !strings.ContainsAny(field, "\t\\\r\n") {
		return field
	}
	var b strings.Builder
	b.Grow(len(field) + 2)
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case delimiter, escapeChar, '\r', '\n':
			b.WriteByte(escapeChar)
		}
		b.WriteByte(field[i])
	}
	return b.String()
}
