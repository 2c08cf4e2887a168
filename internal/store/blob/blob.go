// Package blob is the content-addressed object store: file content is split
// into content-defined blocks, each stored once under its xxh3-128
// fingerprint. Writes of identical content are idempotent no-ops, so the
// store needs no exclusive access.
package blob

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"github.com/keshon/snapfs/internal/config"
	"github.com/keshon/snapfs/internal/fs"
)

// Ref describes one stored block of content: its fingerprint, byte size and
// the offset inside the source file it was cut from.
type Ref struct {
	Hash   string `json:"hash"`
	Size   int64  `json:"size"`
	Offset int64  `json:"offset"`
}

// Store handles all object-level storage operations under Dir.
type Store struct {
	Dir string
	FS  fs.FS
}

func NewStore(dir string, fsys fs.FS) *Store {
	return &Store{Dir: dir, FS: fsys}
}

// MissingError reports a block absent from the store.
type MissingError struct {
	Hash string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("block %s not present in store", e.Hash)
}

func (s *Store) objectPath(hash string) string {
	return filepath.Join(s.Dir, hash+config.ObjectExt)
}

// Read retrieves a block by its fingerprint.
func (s *Store) Read(hash string) ([]byte, error) {
	data, err := s.FS.ReadFile(s.objectPath(hash))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, &MissingError{Hash: hash}
		}
		return nil, fmt.Errorf("read block %q: %w", hash, err)
	}
	return data, nil
}

// Fingerprint computes the store's content hash over data. The same
// function fingerprints blocks and snapshot serializations; it is the single
// designated content hash of the process.
func Fingerprint(data []byte) string {
	h := xxh3.Hash128(data).Bytes()
	return hex.EncodeToString(h[:])
}

// hashBlock fingerprints one block cut at offset.
func hashBlock(data []byte, offset int64) Ref {
	return Ref{
		Hash:   Fingerprint(data),
		Size:   int64(len(data)),
		Offset: offset,
	}
}
