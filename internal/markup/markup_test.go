// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"", Blank},
		{"#", Heading},
		{"# Title", Heading},
		{"#no-space", Heading},
		{"Hello world", Content},
		{" # indented", Content},
		{"\t", Content},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.line), "Classify(%q)", tt.line)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		line      string
		wantOut   string
		wantState State
	}{
		{
			name:      "heading",
			line:      "# Title",
			wantOut:   "<h1>Title</h1>\n",
			wantState: Closed,
		},
		{
			name:      "heading with empty body is not suppressed",
			line:      "# ",
			wantOut:   "<h1></h1>\n",
			wantState: Closed,
		},
		{
			name:      "heading strips marker and one separator",
			line:      "#-Title",
			wantOut:   "<h1>Title</h1>\n",
			wantState: Closed,
		},
		{
			name:      "multibyte separator is stripped whole",
			line:      "#é",
			wantOut:   "<h1></h1>\n",
			wantState: Closed,
		},
		{
			name:      "no-break space separator",
			line:      "#\u00a0Title",
			wantOut:   "<h1>Title</h1>\n",
			wantState: Closed,
		},
		{
			name:      "wide rune separator",
			line:      "#日本",
			wantOut:   "<h1>本</h1>\n",
			wantState: Closed,
		},
		{
			name:      "content line",
			line:      "Hello world",
			wantOut:   "<p>Hello world</p>\n",
			wantState: Closed,
		},
		{
			name:      "blank line emits nothing",
			line:      "",
			wantOut:   "",
			wantState: Closed,
		},
		{
			name:      "blank line keeps open state",
			state:     ParagraphOpen,
			line:      "",
			wantOut:   "",
			wantState: ParagraphOpen,
		},
		{
			name:      "heading closes open paragraph first",
			state:     ParagraphOpen,
			line:      "# Next",
			wantOut:   "</p>\n<h1>Next</h1>\n",
			wantState: Closed,
		},
		{
			name:      "content continues open paragraph",
			state:     ParagraphOpen,
			line:      "more",
			wantOut:   "more</p>\n",
			wantState: Closed,
		},
		{
			name:      "content closes open heading first",
			state:     HeadingOpen,
			line:      "text",
			wantOut:   "</h1>\n<p>text</p>\n",
			wantState: Closed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, next, err := Step(tt.state, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.True(t, utf8.ValidString(out), "output %q is not valid UTF-8", out)
			assert.Equal(t, tt.wantState, next)
		})
	}
}

func TestStep_ShortHeading(t *testing.T) {
	out, next, err := Step(ParagraphOpen, "#")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedLine))
	assert.Empty(t, out)
	assert.Equal(t, ParagraphOpen, next, "state must not change on error")

	var mle *MalformedLineError
	require.ErrorAs(t, err, &mle)
	assert.Equal(t, "#", mle.Text)
	assert.Zero(t, mle.Line)
}

func TestStep_InvalidSeparator(t *testing.T) {
	out, next, err := Step(Closed, "#\xffTitle")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "not valid UTF-8")
	assert.Empty(t, out)
	assert.Equal(t, Closed, next)
}

func TestStep_Sequence(t *testing.T) {
	lines := []string{"# Title", "", "First", "Second", "", "", "# End"}

	var got []string
	st := Closed
	for _, line := range lines {
		out, next, err := Step(st, line)
		require.NoError(t, err)
		got = append(got, out)
		st = next
	}

	want := []string{
		"<h1>Title</h1>\n",
		"",
		"<p>First</p>\n",
		"<p>Second</p>\n",
		"",
		"",
		"<h1>End</h1>\n",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Closed, st)
}

func TestFlush(t *testing.T) {
	assert.Equal(t, "", Flush(Closed))
	assert.Equal(t, "</h1>\n", Flush(HeadingOpen))
	assert.Equal(t, "</p>\n", Flush(ParagraphOpen))
}

func TestMalformedLineError_Message(t *testing.T) {
	err := &MalformedLineError{Line: 7, Text: "#", Reason: "too short"}
	assert.Equal(t, `line 7: malformed input line: too short ("#")`, err.Error())

	err.Line = 0
	assert.Equal(t, `malformed input line: too short ("#")`, err.Error())
}

func TestKindAndStateString(t *testing.T) {
	assert.Equal(t, "heading", Heading.String())
	assert.Equal(t, "blank", Blank.String())
	assert.Equal(t, "content", Content.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "paragraph-open", ParagraphOpen.String())
	assert.Equal(t, "State(9)", State(9).String())
}
