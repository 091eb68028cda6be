package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/pathlab/internal/ctxlog"
)

// Load parses every .hcl file named by paths, descending into directories,
// and merges them into one Scenario in the order the files are found.
func Load(ctx context.Context, paths ...string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered scenario files.", "count", len(files))

	parser := hclparse.NewParser()
	sc := &Scenario{}
	for _, f := range files {
		file, diags := parser.ParseHCLFile(f)
		if diags.HasErrors() {
			return nil, fmt.Errorf("scenario: parse %s: %w", f, diags)
		}
		if err := sc.merge(file, f); err != nil {
			return nil, err
		}
	}
	logger.Debug("Scenario loaded.",
		"nodes", len(sc.Nodes), "edges", len(sc.Edges), "queries", len(sc.Queries))

	return sc, nil
}

// findHCLFiles returns the .hcl files under paths without duplicates.
func findHCLFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("scenario: access %s: %w", path, err)
		}
		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scenario: walk %s: %w", path, err)
		}
	}

	return files, nil
}
