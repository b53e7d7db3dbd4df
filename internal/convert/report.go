// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tinymd/pkg/types"
)

// reportFile is the document written by WriteReport.
type reportFile struct {
	Files []types.Report `json:"files" yaml:"files"`
}

// WriteReport writes reports to path as YAML (.yaml, .yml) or JSON (.json).
func WriteReport(path string, reports []types.Report) error {
	var (
		data []byte
		err  error
	)
	doc := reportFile{Files: reports}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case ".json":
		data, err = json.MarshalIndent(&doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported report format %q (want .yaml, .yml, or .json)", filepath.Ext(path))
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return os.Chmod(path, outputPerm)
}

// ReadReport loads a report previously written by WriteReport.
func ReadReport(path string) ([]types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}

	var doc reportFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported report format %q (want .yaml, .yml, or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return doc.Files, nil
}
