//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"

	"github.com/pdiddy/tinymd/internal/convert"
	"github.com/pdiddy/tinymd/pkg/types"
)

const (
	samplesDir    = "samples"
	samplesOutDir = "samples/html"
)

// Samples converts every samples/*.md file into samples/html/ and writes
// samples/html/report.yaml.
func Samples() error {
	mg.Deps(Init)

	inputs, err := filepath.Glob(filepath.Join(samplesDir, "*.md"))
	if err != nil {
		return fmt.Errorf("listing samples: %w", err)
	}

	cfg := types.ConversionConfig{OutputDir: samplesOutDir}
	result := convert.ConvertBatch(convert.MarkupConverter{}, inputs, cfg, os.Stdout)

	if err := convert.WriteReport(filepath.Join(samplesOutDir, "report.yaml"), result.Reports); err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d samples failed", result.Failed, result.Total())
	}
	return nil
}
