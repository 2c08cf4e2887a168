package store

import (
	"context"
	"sort"

	"github.com/keshon/snapfs/internal/store/blob"
)

// Verify recomputes the fingerprint of every block referenced by any
// persisted snapshot and reports the blocks that are missing or damaged.
// Results arrive in fingerprint order.
func (m *Manager) Verify(ctx context.Context) ([]blob.Check, error) {
	snaps, err := m.List()
	if err != nil {
		return nil, err
	}

	hashes := make(map[string]struct{})
	for _, s := range snaps {
		for _, f := range s.Files() {
			for _, ref := range f.Blocks {
				hashes[ref.Hash] = struct{}{}
			}
		}
	}

	var checks []blob.Check
	for check := range m.Blobs.Verify(ctx, hashes, 0) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	sort.Slice(checks, func(i, j int) bool { return checks[i].Hash < checks[j].Hash })
	return checks, nil
}
