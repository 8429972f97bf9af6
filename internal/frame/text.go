package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/laxsim/internal/lax"
)

const (
	// Precision is the number of decimals written per value.
	Precision = 6
	separator = "\n\n"
)

// TextSink writes frames in the text encoding through a buffered writer.
type TextSink struct {
	w      *bufio.Writer
	closer io.Closer
	line   []byte
	err    error
}

// Create opens path for writing, truncating any prior content.
func Create(path string) (*TextSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %q: %w", path, err)
	}
	s := NewTextSink(f)
	s.closer = f
	return s, nil
}

// NewTextSink wraps w. Close flushes but does not close w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{
		w:    bufio.NewWriterSize(w, 64*1024),
		line: make([]byte, 0, 64),
	}
}

func (s *TextSink) WriteFrame(_ int, g lax.Grid) error {
	if s.err != nil {
		return s.err
	}
	for i, v := range g {
		s.line = strconv.AppendInt(s.line[:0], int64(i), 10)
		s.line = append(s.line, ' ')
		s.line = strconv.AppendFloat(s.line, v, 'f', Precision, 64)
		s.line = append(s.line, '\n')
		if _, err := s.w.Write(s.line); err != nil {
			s.err = err
			return err
		}
	}
	if _, err := s.w.WriteString(separator); err != nil {
		s.err = err
	}
	return s.err
}

// Close flushes buffered frames and closes the underlying file, if any.
func (s *TextSink) Close() error {
	err := s.w.Flush()
	if s.closer != nil {
		err = errors.Join(err, s.closer.Close())
		s.closer = nil
	}
	return err
}
