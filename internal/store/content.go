package store

import (
	"context"

	"github.com/keshon/snapfs/internal/store/snapshot"
)

// FileContent is the literal byte payload of one file inside a snapshot.
// It presents content for inspection; tree identity lives in the digest and
// path stats, not here.
type FileContent struct {
	Path    string
	Content []byte
}

// Contents returns the byte content of every file in the snapshot, in the
// snapshot's Files order. The read path is idempotent: repeated calls for
// the same digest return byte-identical results. A block missing from the
// store fails with a ContentError naming the path — never silently
// substituted with empty content.
func (m *Manager) Contents(ctx context.Context, snap snapshot.Snapshot) ([]FileContent, error) {
	files := snap.Files()
	out := make([]FileContent, 0, len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content := make([]byte, 0, f.Size)
		for _, ref := range f.Blocks {
			data, err := m.Blobs.Read(ref.Hash)
			if err != nil {
				return nil, &snapshot.ContentError{Path: f.Path, Err: err}
			}
			content = append(content, data...)
		}
		out = append(out, FileContent{Path: f.Path, Content: content})
	}

	return out, nil
}

// ContentsByFingerprint loads the manifest for a digest fingerprint and
// returns its file contents.
func (m *Manager) ContentsByFingerprint(ctx context.Context, fingerprint string) ([]FileContent, error) {
	snap, err := m.Load(fingerprint)
	if err != nil {
		return nil, err
	}
	return m.Contents(ctx, snap)
}
