// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// AccessMemberKind selects how a source struct reaches the target struct
// instance after a method has been moved away.
type AccessMemberKind int

const (
	// AccessField adds a value field of the target type to the source
	// struct. The zero value of the field plays the role of a
	// parameterless construction.
	AccessField AccessMemberKind = iota

	// AccessProperty adds an accessor method on the source struct
	// returning a pointer to a target instance. Go has no auto-properties;
	// an accessor method is the closest rendition.
	AccessProperty
)

// String returns the token form of the access member kind.
func (k AccessMemberKind) String() string {
	switch k {
	case AccessField:
		return "field"
	case AccessProperty:
		return "property"
	default:
		return "unknown"
	}
}

// ParseAccessMemberKind converts the token form ("field" or "property")
// into an AccessMemberKind.
func ParseAccessMemberKind(s string) (AccessMemberKind, error) {
	switch s {
	case "field":
		return AccessField, nil
	case "property":
		return AccessProperty, nil
	default:
		return 0, fmt.Errorf("unknown access member kind %q (want \"field\" or \"property\")", s)
	}
}

// MoveRequest describes the caller's intent for one move operation:
// which methods leave which struct, where they go, and how the source
// keeps hold of a target instance. Constructed per invocation and
// consumed once.
type MoveRequest struct {
	SourceType string           // Struct the methods currently belong to
	Methods    []string         // Method names to move, applied in order
	TargetType string           // Destination struct, must exist in the same file
	AccessName string           // Access member name; generated when empty
	AccessKind AccessMemberKind // Field or accessor method
}

// MoveResult reports what a completed move produced.
type MoveResult struct {
	Package      string   // Package name of the rewritten compilation unit
	Moved        []string // Methods actually moved, in order
	AccessName   string   // Access member in effect, empty for static moves
	AccessAdded  bool     // True when the access member was newly inserted
	MadeStatic   []string // Moved methods that ended up with an unnamed receiver
	RewrittenUse int      // Number of call sites redirected
}
