// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-spotlight pipeline.
// Implements: paper records and score breakdowns (PaperRecord, ScoreBreakdown,
//
//	ValidationBreakdown); pipeline configuration (Config and its sections).
//
// See docs/ARCHITECTURE.md § Data Model.
package types

// SourceKind identifies which metadata source supplies candidate papers.
type SourceKind string

const (
	SourcePapersWithCode SourceKind = "pwc"
	SourceArxiv          SourceKind = "arxiv"
	SourceFile           SourceKind = "file"
)

// Valid reports whether k names a known source.
func (k SourceKind) Valid() bool {
	switch k {
	case SourcePapersWithCode, SourceArxiv, SourceFile:
		return true
	}
	return false
}
