// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// Snapshot is the on-disk form of one fetch. It stores raw source records
// only; scores are recomputed on every run.
type Snapshot struct {
	Source    string              `yaml:"source"`
	FetchedAt time.Time           `yaml:"fetched_at"`
	Papers    []types.PaperRecord `yaml:"papers"`
}

// WriteSnapshot saves records fetched from src to a YAML file. Enrichment
// slots are cleared before writing.
func WriteSnapshot(path, src string, fetchedAt time.Time, records []types.PaperRecord) error {
	snap := Snapshot{
		Source:    src,
		FetchedAt: fetchedAt.UTC(),
		Papers:    make([]types.PaperRecord, len(records)),
	}
	for i, r := range records {
		r.Trending = nil
		r.Validation = nil
		snap.Papers[i] = r
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot. A JSON document of
// the same shape also loads.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// File replays a saved snapshot.
type File struct {
	Path string
}

// Name returns the source identifier.
func (s *File) Name() string { return string(types.SourceFile) }

// Fetch reads the snapshot. Records keep the source tag they were fetched
// with; untagged records are attributed to the snapshot's source.
func (s *File) Fetch(ctx context.Context) ([]types.PaperRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := ReadSnapshot(s.Path)
	if err != nil {
		return nil, err
	}
	for i := range snap.Papers {
		if snap.Papers[i].Source == "" {
			snap.Papers[i].Source = snap.Source
		}
	}
	return snap.Papers, nil
}
