// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/petar-djukic/go-refactor/analyzer/consolecall"
	"github.com/petar-djukic/go-refactor/analyzer/magicnumber"
)

func init() { register.Plugin("gorefactor", New) }

// New creates a new [Plugin] instance with the given [Settings].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return Plugin{settings: settings}, nil
}

// Plugin bundles the go-refactor analyzers as a [register.LinterPlugin].
type Plugin struct {
	settings Settings
}

// GetLoadMode returns the golangci load mode. The analyzers work on
// syntax alone, so type information is not requested.
func (Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers returns the configured [analysis.Analyzer]s.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	mn := magicnumber.New()
	if p.settings.Allow != nil {
		if err := mn.Flags.Set("allow", *p.settings.Allow); err != nil {
			return nil, fmt.Errorf("applying allow setting: %w", err)
		}
	}

	cc := consolecall.New()
	if p.settings.IncludeMain != nil && *p.settings.IncludeMain {
		if err := cc.Flags.Set("include-main", "true"); err != nil {
			return nil, fmt.Errorf("applying include-main setting: %w", err)
		}
	}

	return []*analysis.Analyzer{mn, cc}, nil
}
