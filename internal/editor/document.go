package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// A Row is one line of text, stored as raw bytes.
type Row struct {
	Chars []byte
}

func (r *Row) Len() int {
	return len(r.Chars)
}

// Document holds the text being viewed. It carries at most one row.
// The zero value is an empty document.
type Document struct {
	rows []Row
}

func NewDocument(line []byte) *Document {
	chars := make([]byte, len(line))
	copy(chars, line)
	return &Document{rows: []Row{{Chars: chars}}}
}

// OpenDocument loads the first line of the file at path, without its
// trailing newline or carriage return.
func OpenDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readDocument(f, path)
}

func readDocument(r io.Reader, name string) (*Document, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(line) == 0 {
		return &Document{}, nil
	}
	return NewDocument(bytes.TrimRight(line, "\r\n")), nil
}

func (d *Document) NumRows() int {
	return len(d.rows)
}

func (d *Document) Row(y int) (*Row, bool) {
	if y < 0 || y >= len(d.rows) {
		return nil, false
	}
	return &d.rows[y], true
}
