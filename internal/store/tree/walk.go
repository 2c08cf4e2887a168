package tree

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/keshon/snapfs/internal/fs"
)

// walk enumerates every entry under root recursively, returning relative
// slash paths with kind and size. The root itself is not listed. Enumeration
// order is whatever the filesystem reports; callers sort.
func walk(ctx context.Context, fsys fs.FS, root string) ([]PathStat, error) {
	var out []PathStat

	var visit func(dir, rel string) error
	visit = func(dir, rel string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("list directory %q: %w", dir, err)
		}

		for _, e := range entries {
			entryRel := path.Join(rel, e.Name())
			entryAbs := filepath.Join(dir, e.Name())

			if e.IsDir() {
				out = append(out, PathStat{Path: entryRel, Kind: KindDir})
				if err := visit(entryAbs, entryRel); err != nil {
					return err
				}
				continue
			}

			fi, err := e.Info()
			if err != nil {
				return fmt.Errorf("stat %q: %w", entryRel, err)
			}
			out = append(out, PathStat{Path: entryRel, Kind: KindFile, Size: fi.Size()})
		}
		return nil
	}

	if err := visit(root, ""); err != nil {
		return nil, err
	}
	return out, nil
}
