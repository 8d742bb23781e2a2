// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// MoveCandidate is one method the candidate scan flagged as better
// placed on another struct: it touches more members of the proposed
// destination than of its own receiver.
type MoveCandidate struct {
	FilePath    string  // Source file, as reported by the scan
	Line        int     // Method declaration line (1-based)
	Method      string  // Method name
	FromType    string  // Current receiver type
	ToType      string  // Proposed destination type
	OwnRefs     int     // References to the receiver's own members
	ForeignRefs int     // References to the destination's members
	Score       float64 // Ranking score, higher first
	Signature   string  // Method signature for display
}
