// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
)

// Format renders an *ast.File to a byte slice using go/format.Node,
// producing gofmt-compliant output. Formatting an already-formatted
// tree returns byte-identical text. The fset is passed explicitly; no
// process-wide formatting state is involved, so independent calls are
// safe to run concurrently.
func Format(fset *token.FileSet, file *ast.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("formatting AST: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders an *ast.File to disk with an atomic write strategy:
// write to a temp file in the same directory, then rename. This
// prevents corruption from partial writes.
//
// The original file's permissions are preserved. If the file does not
// exist yet, permissions default to 0644.
func WriteFile(fset *token.FileSet, file *ast.File, path string) error {
	buf, err := Format(fset, file)
	if err != nil {
		return err
	}
	return WriteText(path, buf)
}

// WriteText writes already-rendered source to disk with the same
// atomic temp-then-rename strategy as WriteFile.
func WriteText(path string, buf []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".go-refactor-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
