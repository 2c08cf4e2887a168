package tree

import (
	"context"
	"log/slog"
	"sort"

	"github.com/keshon/snapfs/internal/fs"
	"github.com/keshon/snapfs/internal/pathspec"
)

// Resolver expands a glob specification against a root directory into an
// ordered PathStat list. It reads the filesystem but never writes it.
// Independent resolutions are safe to run concurrently.
type Resolver struct {
	FS fs.FS
	// Logger receives the Warn-policy diagnostics. Nil means slog.Default.
	Logger *slog.Logger
}

func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{FS: fsys}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Resolve enumerates req.Root, applies the include globs, then subtracts the
// exclude globs, and returns the surviving entries deduplicated and sorted
// lexicographically by path. An include glob matching zero paths is handled
// per the spec's policy; exclude globs matching nothing are never an error.
func (r *Resolver) Resolve(ctx context.Context, req pathspec.Request) ([]PathStat, error) {
	entries, err := walk(ctx, r.FS, req.Root)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]PathStat)

	for _, pattern := range req.Spec.Include() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matched := 0
		for _, e := range entries {
			if pathspec.Match(pattern, e.Path) {
				selected[e.Path] = e
				matched++
			}
		}

		if matched == 0 {
			switch req.Spec.OnMismatch() {
			case pathspec.BehaviorIgnore, pathspec.BehaviorUnspecified:
				// proceed silently
			case pathspec.BehaviorWarn:
				r.logger().Warn("glob matched no paths",
					"pattern", pattern, "root", req.Root)
			case pathspec.BehaviorError:
				return nil, &pathspec.MatchError{Pattern: pattern, Root: req.Root}
			}
		}
	}

	for _, pattern := range req.Spec.Exclude() {
		for p := range selected {
			if pathspec.Match(pattern, p) {
				delete(selected, p)
			}
		}
	}

	out := make([]PathStat, 0, len(selected))
	for _, e := range selected {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out, nil
}
