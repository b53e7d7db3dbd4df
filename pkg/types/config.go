// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionConfig holds settings for converting markup files to HTML.
// Values come from flags, TINYMD_* environment variables, or tinymd.yaml.
type ConversionConfig struct {
	// OutputDir places generated .html files in this directory instead of
	// next to their input. Empty means alongside the input.
	OutputDir string `json:"output_dir" mapstructure:"output_dir" yaml:"output_dir"`

	// ReportPath, when set, receives a YAML or JSON summary of the run.
	// The format follows the file extension.
	ReportPath string `json:"report" mapstructure:"report" yaml:"report"`

	// Quiet suppresses the banner and informational lines.
	Quiet bool `json:"quiet" mapstructure:"quiet" yaml:"quiet"`

	// Debug enables diagnostic logging on stderr.
	Debug bool `json:"debug" mapstructure:"debug" yaml:"debug"`
}
