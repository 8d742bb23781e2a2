// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

/*
Package gclplugin provides golangci-lint plugin integration for the
go-refactor convention analyzers.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: github.com/petar-djukic/go-refactor
	    import: github.com/petar-djukic/go-refactor/gclplugin
	    version: v0.1.0

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linters in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  enable:
	    - gorefactor
	  settings:
	    custom:
	      gorefactor:
	        type: module
	        description: "go-refactor convention analyzers."
	        settings:
	          allow: "0,1,-1"

4. Run the linters:

	./golangci-lint run .
*/
package gclplugin
