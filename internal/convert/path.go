// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	inputExt  = ".md"
	outputExt = ".html"
)

// ErrBadInputName is returned when an output path cannot be derived from an
// input path.
var ErrBadInputName = errors.New("input name must be <name>.md")

// OutputPath returns the HTML path that sits next to input: the ".md"
// extension (any case) is replaced by ".html". The name before the
// extension must be non-empty.
func OutputPath(input string) (string, error) {
	ext := filepath.Ext(input)
	if !strings.EqualFold(ext, inputExt) {
		return "", fmt.Errorf("%w: %s", ErrBadInputName, input)
	}

	stem := strings.TrimSuffix(filepath.Base(input), ext)
	if stem == "" {
		return "", fmt.Errorf("%w: %s has no name before %s", ErrBadInputName, input, ext)
	}

	return strings.TrimSuffix(input, ext) + outputExt, nil
}

// OutputPathIn is OutputPath with the result moved into dir. An empty dir
// keeps the output next to the input.
func OutputPathIn(input, dir string) (string, error) {
	out, err := OutputPath(input)
	if err != nil || dir == "" {
		return out, err
	}
	return filepath.Join(dir, filepath.Base(out)), nil
}
