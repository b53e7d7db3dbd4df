// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus is the outcome of converting one input file.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Report records what happened to one input file.
type Report struct {
	// Input is the path of the markup file as given.
	Input string `json:"input" yaml:"input"`

	// Output is the path of the generated HTML file. It is empty when no
	// output path could be derived.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// LinesRead counts input lines consumed, including blank lines.
	LinesRead int `json:"lines_read" yaml:"lines_read"`

	// LinesWritten counts output lines produced.
	LinesWritten int `json:"lines_written" yaml:"lines_written"`

	// Error holds the failure message for failed conversions.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
