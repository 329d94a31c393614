package compiler

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// CompileFiles compiles paths with at most jobs files in flight. Results
// are returned in input order; a file that failed has a nil entry and its
// error is part of the returned multierror, also in input order. Files not
// started when ctx is cancelled are skipped and the context error returned.
func (c *Compiler) CompileFiles(ctx context.Context, paths []string, jobs int) ([]*CompileResult, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]*CompileResult, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = c.Compile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = appendError(merr, err)
		}
	}
	return results, merr.ErrorOrNil()
}

// CollectFiles expands targets into the list of files to process. Files
// named explicitly are always included; directories are walked for files
// with one of exts, skipping hidden directories and node_modules.
func CollectFiles(targets []string, exts []string) ([]string, error) {
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", target, err)
		}
		if !info.IsDir() {
			files = append(files, target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != target && (name == "node_modules" || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(exts, filepath.Ext(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", target, err)
		}
	}
	return files, nil
}
