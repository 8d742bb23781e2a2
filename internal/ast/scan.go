// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// skipDirs contains directory names that ScanDir skips by default.
var skipDirs = map[string]bool{
	"vendor":       true,
	".git":         true,
	"testdata":     true,
	"node_modules": true,
}

// ScanResult holds the output of a directory scan.
type ScanResult struct {
	FileSet *token.FileSet
	Files   map[string]*ast.File
	Errors  []ScanError
}

// ScanError records a parse failure for a single file.
type ScanError struct {
	FilePath string
	Err      error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

// ScanDir walks the directory tree rooted at dir, finds all .go files,
// and parses them in parallel using a bounded worker pool. It skips
// vendor/, .git/, testdata/, and node_modules/ directories, plus any
// extra names in exclude.
//
// Parse errors for individual files are collected in ScanResult.Errors
// but do not abort the scan. The concurrency parameter controls the
// number of parallel parser goroutines; if <= 0 it defaults to
// runtime.NumCPU().
func ScanDir(dir string, concurrency int, exclude []string) (*ScanResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absDir)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var paths []string
	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			name := d.Name()
			if (skipDirs[name] || excluded[name]) && path != absDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	fset := token.NewFileSet()
	result := &ScanResult{
		FileSet: fset,
		Files:   make(map[string]*ast.File, len(paths)),
	}

	if len(paths) == 0 {
		return result, nil
	}

	type parseResult struct {
		path string
		file *ast.File
		err  error
	}

	jobs := make(chan string, len(paths))
	results := make(chan parseResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				f, parseErr := parser.ParseFile(fset, path, nil, parser.ParseComments)
				results <- parseResult{path: path, file: f, err: parseErr}
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for pr := range results {
		relPath, relErr := filepath.Rel(absDir, pr.path)
		if relErr != nil {
			relPath = pr.path
		}

		if pr.err != nil {
			result.Errors = append(result.Errors, ScanError{FilePath: relPath, Err: pr.err})
			// Even with errors, go/parser may return a partial AST.
			if pr.file != nil {
				result.Files[relPath] = pr.file
			}
			continue
		}
		result.Files[relPath] = pr.file
	}

	return result, nil
}
