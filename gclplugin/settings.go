// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package gclplugin

// Settings represents the configuration options for an instance of the [Plugin].
// Unset fields leave the analyzer defaults in place.
type Settings struct {
	// Allow lists numeric literal values magicnumber should not report,
	// as a comma-separated string.
	Allow *string `json:"allow,omitzero"`
	// IncludeMain makes consolecall report calls in package main too.
	IncludeMain *bool `json:"include-main,omitzero"`
}
