// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: "notes.md", want: "notes.html"},
		{name: "two character name", input: "ab.md", want: "ab.html"},
		{name: "one character name", input: "a.md", want: "a.html"},
		{name: "nested path", input: filepath.Join("docs", "guide.md"), want: filepath.Join("docs", "guide.html")},
		{name: "upper case extension", input: "README.MD", want: "README.html"},
		{name: "dots in name", input: "v1.2.md", want: "v1.2.html"},
		{name: "extension only", input: ".md", wantErr: true},
		{name: "extension only in dir", input: filepath.Join("docs", ".md"), wantErr: true},
		{name: "no extension", input: "README", wantErr: true},
		{name: "other extension", input: "notes.txt", wantErr: true},
		{name: "short name no extension", input: "md", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputPath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadInputName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputPathIn(t *testing.T) {
	got, err := OutputPathIn(filepath.Join("docs", "guide.md"), "site")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("site", "guide.html"), got)

	got, err = OutputPathIn("guide.md", "")
	require.NoError(t, err)
	assert.Equal(t, "guide.html", got)

	_, err = OutputPathIn("guide.txt", "site")
	assert.ErrorIs(t, err, ErrBadInputName)
}
