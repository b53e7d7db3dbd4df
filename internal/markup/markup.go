// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup turns heading and paragraph lines into HTML one line at a
// time. A line whose first byte is '#' becomes an <h1>, an empty line is a
// separator that produces nothing, and any other line becomes a single-line
// <p>. The transition function Step is pure; Renderer and Render drive it over
// a stream of lines.
package markup

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	headingMarker = '#'

	// markerLen is the byte width of headingMarker. One separator rune
	// follows it and is stripped with it.
	markerLen = 1

	openHeading    = "<h1>"
	closeHeading   = "</h1>\n"
	openParagraph  = "<p>"
	closeParagraph = "</p>\n"

	emptyParagraph = openParagraph + closeParagraph
)

// Kind classifies an input line by its first character.
type Kind int

const (
	Blank Kind = iota
	Heading
	Content
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Heading:
		return "heading"
	case Content:
		return "content"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State records which wrapper tag, if any, is open between lines.
type State int

const (
	Closed State = iota
	HeadingOpen
	ParagraphOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case HeadingOpen:
		return "heading-open"
	case ParagraphOpen:
		return "paragraph-open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrMalformedLine is wrapped by every MalformedLineError.
var ErrMalformedLine = errors.New("malformed input line")

// MalformedLineError reports an input line the state machine cannot render.
// Line is 1-based; it is zero when the error comes straight from Step.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s (%q)", e.Line, ErrMalformedLine, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %s (%q)", ErrMalformedLine, e.Reason, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// Classify returns the kind of line.
func Classify(line string) Kind {
	switch {
	case line == "":
		return Blank
	case line[0] == headingMarker:
		return Heading
	default:
		return Content
	}
}

// Step renders one line given the state left by the previous line. It returns
// the output fragment (possibly empty) and the state to feed into the next
// call. A heading closes an open paragraph before opening itself, and both
// headings and paragraphs close on the line that opens them.
func Step(st State, line string) (string, State, error) {
	switch Classify(line) {
	case Heading:
		body, err := headingBody(line)
		if err != nil {
			return "", st, err
		}
		out := Flush(st) + openHeading + body + closeHeading
		return out, Closed, nil

	case Content:
		out := ""
		if st != ParagraphOpen {
			out = Flush(st) + openParagraph
		}
		out += line + closeParagraph
		// Unreachable through Classify, which sends "" to Blank. Kept so an
		// empty paragraph is never emitted whatever the classification.
		if out == emptyParagraph {
			out = ""
		}
		return out, Closed, nil

	default:
		return "", st, nil
	}
}

// Flush returns the closing tag for whatever st leaves open.
func Flush(st State) string {
	switch st {
	case HeadingOpen:
		return closeHeading
	case ParagraphOpen:
		return closeParagraph
	default:
		return ""
	}
}

func headingBody(line string) (string, error) {
	if len(line) <= markerLen {
		return "", &MalformedLineError{
			Text:   line,
			Reason: "heading marker must be followed by a separator",
		}
	}
	sep, size := utf8.DecodeRuneInString(line[markerLen:])
	if sep == utf8.RuneError && size <= 1 {
		return "", &MalformedLineError{
			Text:   line,
			Reason: "heading separator is not valid UTF-8",
		}
	}
	return line[markerLen+size:], nil
}
