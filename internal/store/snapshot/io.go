package snapshot

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/snapfs/internal/config"
	"github.com/keshon/snapfs/internal/fs"
	"github.com/keshon/snapfs/internal/util"
)

// ManifestStore persists snapshots as JSON manifests keyed by fingerprint.
type ManifestStore struct {
	Dir string
	FS  fs.FS
}

func NewManifestStore(dir string, fsys fs.FS) *ManifestStore {
	return &ManifestStore{Dir: dir, FS: fsys}
}

func (m *ManifestStore) manifestPath(fingerprint string) string {
	return filepath.Join(m.Dir, fingerprint+config.ManifestExt)
}

// Save writes the snapshot manifest atomically.
func (m *ManifestStore) Save(s Snapshot) error {
	if s.Digest.Fingerprint == "" {
		return fmt.Errorf("invalid snapshot: missing fingerprint")
	}
	return util.WriteJSON(m.FS, m.manifestPath(s.Digest.Fingerprint), s)
}

// Load retrieves a snapshot by fingerprint and re-verifies the digest
// pairing: a manifest whose stats no longer hash to its fingerprint is
// rejected rather than returned.
func (m *ManifestStore) Load(fingerprint string) (Snapshot, error) {
	var s Snapshot
	if err := util.ReadJSON(m.FS, m.manifestPath(fingerprint), &s); err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot manifest %q: %w", fingerprint, err)
	}
	if got := Compute(s.PathStats); got != s.Digest {
		return Snapshot{}, fmt.Errorf("snapshot manifest %q is corrupt: stats hash to %s", fingerprint, got.Fingerprint)
	}
	return s, nil
}

// List loads every stored manifest, ordered by fingerprint.
func (m *ManifestStore) List() ([]Snapshot, error) {
	entries, err := m.FS.ReadDir(m.Dir)
	if err != nil {
		if m.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list snapshot manifests: %w", err)
	}

	var out []Snapshot
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), config.ManifestExt) {
			continue
		}
		fingerprint := strings.TrimSuffix(e.Name(), config.ManifestExt)
		s, err := m.Load(fingerprint)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Digest.Fingerprint < out[j].Digest.Fingerprint
	})
	return out, nil
}
