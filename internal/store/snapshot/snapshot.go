// Package snapshot turns resolved path stats into fingerprinted, immutable
// snapshots and persists them as manifests keyed by fingerprint.
package snapshot

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/keshon/snapfs/internal/store/blob"
	"github.com/keshon/snapfs/internal/store/tree"
)

// Snapshot binds a digest to the ordered path stats that produced it.
// Construct one only through New, Build or a manifest Load — that pairing is
// what makes a snapshot trustworthy as a cache key. A changed tree requires
// a new Snapshot; mutation is not supported.
type Snapshot struct {
	Digest    Digest          `json:"digest"`
	PathStats []tree.PathStat `json:"path_stats"`
}

// New assembles a Snapshot from ordered stats, computing the digest from
// exactly those stats.
func New(stats []tree.PathStat) Snapshot {
	return Snapshot{Digest: Compute(stats), PathStats: stats}
}

// Empty is the canonical zero-entry snapshot. Side-effect free.
func Empty() Snapshot {
	return Snapshot{Digest: EmptyDigest()}
}

// Files returns the file entries, preserving snapshot order.
func (s Snapshot) Files() []tree.PathStat {
	return s.filter(tree.KindFile)
}

// Dirs returns the directory entries, preserving snapshot order.
func (s Snapshot) Dirs() []tree.PathStat {
	return s.filter(tree.KindDir)
}

func (s Snapshot) filter(kind tree.Kind) []tree.PathStat {
	var out []tree.PathStat
	for _, p := range s.PathStats {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Stat is the kind-only projection of a PathStat.
type Stat struct {
	Kind   tree.Kind  `json:"kind"`
	Size   int64      `json:"size"`
	Blocks []blob.Ref `json:"blocks,omitempty"`
}

// FileStats returns the stat metadata of the file entries.
func (s Snapshot) FileStats() []Stat {
	return statsOf(s.Files())
}

// DirStats returns the stat metadata of the directory entries.
func (s Snapshot) DirStats() []Stat {
	return statsOf(s.Dirs())
}

func statsOf(stats []tree.PathStat) []Stat {
	out := make([]Stat, 0, len(stats))
	for _, p := range stats {
		out = append(out, Stat{Kind: p.Kind, Size: p.Size, Blocks: p.Blocks})
	}
	return out
}

// ContentError reports file content that could not be read or was missing
// from the store. It names the symbolic path; the underlying cause unwraps.
type ContentError struct {
	Path string
	Err  error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content unavailable for %q: %v", e.Path, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

// Splitter provides the content sub-fingerprints of a file. *blob.Store
// satisfies it.
type Splitter interface {
	Split(path string) ([]blob.Ref, error)
}

// Build enriches the resolved stats with content block refs and assembles
// the snapshot. Stats are copied, never mutated in place. Unreadable file
// content fails with a ContentError naming the path. Zero stats return the
// canonical empty snapshot without touching the splitter.
func Build(ctx context.Context, splitter Splitter, root string, stats []tree.PathStat) (Snapshot, error) {
	if len(stats) == 0 {
		return Empty(), nil
	}

	enriched := make([]tree.PathStat, len(stats))
	copy(enriched, stats)

	for i := range enriched {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}
		if enriched[i].Kind != tree.KindFile {
			continue
		}
		refs, err := splitter.Split(filepath.Join(root, enriched[i].Path))
		if err != nil {
			return Snapshot{}, &ContentError{Path: enriched[i].Path, Err: err}
		}
		enriched[i].Blocks = refs
	}

	return New(enriched), nil
}
