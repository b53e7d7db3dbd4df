// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns markup files into HTML files on disk, one file or a
// batch at a time, and records the outcome of each conversion.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/natefinch/atomic"

	"github.com/pdiddy/tinymd/internal/logger"
	"github.com/pdiddy/tinymd/internal/markup"
	"github.com/pdiddy/tinymd/pkg/types"
)

const (
	outputPerm = 0o644
	dirPerm    = 0o755
)

// Converter renders markup read from r as HTML written to w.
type Converter interface {
	Convert(r io.Reader, w io.Writer) (markup.Stats, error)
}

// MarkupConverter is the Converter backed by the markup state machine.
type MarkupConverter struct{}

// Convert implements Converter.
func (MarkupConverter) Convert(r io.Reader, w io.Writer) (markup.Stats, error) {
	return markup.Render(r, w)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Reports   []types.Report
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts the markup file at input and writes the HTML next to
// it, or into cfg.OutputDir. The whole input is rendered before anything is
// written, and the output replaces any existing file atomically, so a failed
// conversion never leaves a partial file behind. Informational lines go to w
// unless cfg.Quiet is set.
func ConvertFile(c Converter, input string, cfg types.ConversionConfig, w io.Writer) (types.Report, error) {
	report := types.Report{
		Input:  input,
		Status: types.ConversionFailed,
	}
	if cfg.Quiet {
		w = io.Discard
	}
	log := logger.L().With("input", input)

	fmt.Fprintf(w, "[ INFO ] Trying to parse %s...\n", input)

	output, err := OutputPathIn(input, cfg.OutputDir)
	if err != nil {
		return fail(report, err)
	}
	report.Output = output

	f, err := os.Open(input)
	if err != nil {
		return fail(report, fmt.Errorf("opening %s: %w", input, err))
	}
	defer f.Close()

	var buf bytes.Buffer
	stats, err := c.Convert(f, &buf)
	report.LinesRead = stats.LinesRead
	report.LinesWritten = stats.LinesWritten
	if err != nil {
		return fail(report, fmt.Errorf("converting %s: %w", input, err))
	}
	log.Debug("convert.rendered", "lines_read", stats.LinesRead, "lines_written", stats.LinesWritten)

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, dirPerm); err != nil {
			return fail(report, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err))
		}
	}
	if err := atomic.WriteFile(output, &buf); err != nil {
		return fail(report, fmt.Errorf("writing %s: %w", output, err))
	}
	// atomic.WriteFile leaves new files with the temp file's mode.
	if err := os.Chmod(output, outputPerm); err != nil {
		return fail(report, fmt.Errorf("setting permissions on %s: %w", output, err))
	}

	report.Status = types.ConversionDone
	report.ConvertedAt = time.Now().UTC()
	log.Debug("convert.written", "output", output)

	fmt.Fprintln(w, "[ INFO ] Parsing complete!")
	return report, nil
}

func fail(report types.Report, err error) (types.Report, error) {
	report.Error = err.Error()
	report.ConvertedAt = time.Now().UTC()
	logger.L().Debug("convert.failed", "input", report.Input, "err", err)
	return report, err
}

// ConvertBatch converts each input in order, printing per-file status to w
// and returning a summary. A failure does not stop the batch.
func ConvertBatch(c Converter, inputs []string, cfg types.ConversionConfig, w io.Writer) BatchResult {
	var result BatchResult
	quiet := cfg
	quiet.Quiet = true

	for _, input := range inputs {
		report, err := ConvertFile(c, input, quiet, w)
		result.Reports = append(result.Reports, report)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", input, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", input, report.Output)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
