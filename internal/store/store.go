// Package store wires the filesystem, the blob store, the resolver and the
// snapshot manifests into the engine's entry points.
package store

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/keshon/snapfs/internal/config"
	"github.com/keshon/snapfs/internal/fs"
	"github.com/keshon/snapfs/internal/pathspec"
	"github.com/keshon/snapfs/internal/progress"
	"github.com/keshon/snapfs/internal/store/blob"
	"github.com/keshon/snapfs/internal/store/snapshot"
	"github.com/keshon/snapfs/internal/store/tree"
	"github.com/keshon/snapfs/internal/util"
)

// Manager is the high-level store abstraction binding all subsystems.
type Manager struct {
	Root      string
	FS        fs.FS
	Blobs     *blob.Store
	Manifests *snapshot.ManifestStore
	Resolver  *tree.Resolver

	// Progress, when non-nil, receives spinner output during store writes.
	Progress io.Writer
}

// InitAt ensures the store directory structure exists under root (usually
// .snapfs/) and returns a manager bound to it.
func InitAt(fsys fs.FS, root string) (*Manager, error) {
	if root == "" {
		root = config.StoreDir
	}
	root = filepath.Clean(root)

	dirs := []string{
		filepath.Join(root, config.ObjectsDir),
		filepath.Join(root, config.SnapshotsDir),
	}
	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init store dir %q: %w", d, err)
		}
	}

	return NewManager(fsys, root), nil
}

// NewManager constructs a manager without touching the filesystem.
func NewManager(fsys fs.FS, root string) *Manager {
	root = filepath.Clean(root)
	return &Manager{
		Root:      root,
		FS:        fsys,
		Blobs:     blob.NewStore(filepath.Join(root, config.ObjectsDir), fsys),
		Manifests: snapshot.NewManifestStore(filepath.Join(root, config.SnapshotsDir), fsys),
		Resolver:  tree.NewResolver(fsys),
	}
}

// Snapshot resolves the request, digests the resolved tree, stores the
// file content blocks and persists the manifest. The returned snapshot's
// digest is computed from exactly the stats it carries.
func (m *Manager) Snapshot(ctx context.Context, req pathspec.Request) (snapshot.Snapshot, error) {
	stats, err := m.Resolver.Resolve(ctx, req)
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	snap, err := snapshot.Build(ctx, m.Blobs, req.Root, stats)
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	if err := m.writeContent(ctx, req.Root, snap); err != nil {
		return snapshot.Snapshot{}, err
	}

	if err := m.Manifests.Save(snap); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("persist snapshot %s: %w", snap.Digest.Fingerprint, err)
	}

	return snap, nil
}

// writeContent lands every file's blocks in the blob store. Identical
// content already present is skipped by the store itself.
func (m *Manager) writeContent(ctx context.Context, root string, snap snapshot.Snapshot) error {
	files := snap.Files()
	if len(files) == 0 {
		return nil
	}

	_ = m.Blobs.CleanupTemp()

	bar := progress.New(m.Progress, len(files), "Storing files")
	defer bar.Finish()

	return util.Parallel(files, util.WorkerCount(), func(f tree.PathStat) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Blobs.Write(filepath.Join(root, f.Path), f.Blocks); err != nil {
			return fmt.Errorf("storing file %s: %w", f.Path, err)
		}
		bar.Increment()
		return nil
	})
}

// Load retrieves a persisted snapshot by fingerprint.
func (m *Manager) Load(fingerprint string) (snapshot.Snapshot, error) {
	return m.Manifests.Load(fingerprint)
}

// List returns all persisted snapshots ordered by fingerprint.
func (m *Manager) List() ([]snapshot.Snapshot, error) {
	return m.Manifests.List()
}
