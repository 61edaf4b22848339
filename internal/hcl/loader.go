package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/bmicalc/internal/config"
	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/specialistvlad/bmicalc/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	converter *Converter
}

// NewLoader creates a new HCL batch loader.
func NewLoader() *Loader {
	return &Loader{converter: NewConverter()}
}

// Load parses every .hcl file reachable from paths and collects their
// measurement blocks in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Measurements {
			m, err := l.translateMeasurement(ctx, file, block)
			if err != nil {
				return nil, err
			}
			if err := model.Add(m); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("HCL loading complete.", "measurements", len(model.Measurements))
	return model, nil
}

// translateMeasurement converts the HCL block into the agnostic model.
func (l *Loader) translateMeasurement(ctx context.Context, file string, b *measurementBlock) (*config.Measurement, error) {
	height, err := l.converter.Text(ctx, b.Height)
	if err != nil {
		return nil, fmt.Errorf("in %s, measurement %q: invalid height: %w", file, b.Name, err)
	}
	weight, err := l.converter.Text(ctx, b.Weight)
	if err != nil {
		return nil, fmt.Errorf("in %s, measurement %q: invalid weight: %w", file, b.Name, err)
	}
	return &config.Measurement{
		Name:   b.Name,
		Height: height,
		Weight: weight,
		Source: file,
	}, nil
}

// findAllHCLFiles walks all given paths and returns a flat, de-duplicated
// list of the .hcl files found. Unlike a module search path, a batch path
// that does not exist is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("input file %s does not have the .hcl extension", path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
