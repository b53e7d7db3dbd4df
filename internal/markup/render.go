// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stats counts the lines a Renderer consumed and produced.
type Stats struct {
	LinesRead    int `json:"lines_read" yaml:"lines_read"`
	LinesWritten int `json:"lines_written" yaml:"lines_written"`
}

// Renderer feeds lines through Step in order and writes each non-empty
// fragment to w. It is not safe for concurrent use.
type Renderer struct {
	w     io.Writer
	state State
	stats Stats
}

// NewRenderer returns a Renderer that starts with every tag closed.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Line renders the next input line. The line must not include its
// terminator. Malformed lines are reported with their 1-based line number.
func (r *Renderer) Line(line string) error {
	r.stats.LinesRead++

	out, next, err := Step(r.state, line)
	if err != nil {
		var mle *MalformedLineError
		if errors.As(err, &mle) {
			mle.Line = r.stats.LinesRead
		}
		return err
	}
	r.state = next

	if out == "" {
		return nil
	}
	if _, err := io.WriteString(r.w, out); err != nil {
		return fmt.Errorf("writing line %d: %w", r.stats.LinesRead, err)
	}
	r.stats.LinesWritten += strings.Count(out, "\n")
	return nil
}

// Close writes the closing tag for anything still open at end of input.
func (r *Renderer) Close() error {
	tail := Flush(r.state)
	r.state = Closed
	if tail == "" {
		return nil
	}
	if _, err := io.WriteString(r.w, tail); err != nil {
		return fmt.Errorf("flushing open tag: %w", err)
	}
	r.stats.LinesWritten++
	return nil
}

// State returns the state left by the last rendered line.
func (r *Renderer) State() State { return r.state }

// Stats returns the counts accumulated so far.
func (r *Renderer) Stats() Stats { return r.stats }

// Render reads src line by line, strips "\n" and "\r\n" terminators, and
// writes the HTML rendering to dst. Lines have no length limit. It stops at
// the first read, write, or malformed-line error.
func Render(src io.Reader, dst io.Writer) (Stats, error) {
	r := NewRenderer(dst)
	br := bufio.NewReader(src)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return r.Stats(), fmt.Errorf("reading line %d: %w", r.Stats().LinesRead+1, err)
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if lerr := r.Line(line); lerr != nil {
				return r.Stats(), lerr
			}
		}
		if err != nil {
			break
		}
	}

	if err := r.Close(); err != nil {
		return r.Stats(), err
	}
	return r.Stats(), nil
}
