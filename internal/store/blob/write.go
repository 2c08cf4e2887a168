package blob

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/keshon/snapfs/internal/util"
)

// Write stores all blocks of a source file. Blocks already present are
// skipped, so rewriting identical content is a no-op.
func (s *Store) Write(srcPath string, refs []Ref) error {
	if err := s.FS.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create objects dir: %w", err)
	}
	return util.Parallel(refs, util.WorkerCount(), func(r Ref) error {
		return s.writeBlockAtomic(srcPath, r)
	})
}

// writeBlockAtomic cuts one block out of the source file and lands it in the
// store via temp file + rename.
func (s *Store) writeBlockAtomic(srcPath string, ref Ref) error {
	dst := s.objectPath(ref.Hash)

	// Skip if block exists
	if fi, err := s.FS.Stat(dst); err == nil && fi.Size() == ref.Size {
		return nil
	}

	src, err := s.FS.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source file %q: %w", srcPath, err)
	}
	defer src.Close()

	if _, err := src.Seek(ref.Offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to offset %d in %q: %w", ref.Offset, srcPath, err)
	}

	// A short read means the source changed since it was split; storing a
	// padded buffer under ref.Hash would corrupt the store.
	data := make([]byte, ref.Size)
	if _, err := io.ReadFull(src, data); err != nil {
		return fmt.Errorf("read block %q: %w", ref.Hash, err)
	}

	tmp, tmpPath, err := s.FS.CreateTempFile(filepath.Dir(dst), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %q: %w", filepath.Dir(dst), err)
	}
	defer s.FS.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp block: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp block: %w", err)
	}

	if err := s.FS.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("rename temp %q to %q: %w", tmpPath, dst, err)
	}

	return nil
}

// CleanupTemp removes orphaned temp files left in the objects directory by
// interrupted writes.
func (s *Store) CleanupTemp() error {
	entries, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "tmp-") || strings.HasPrefix(name, ".tmp-") {
			_ = s.FS.Remove(filepath.Join(s.Dir, name))
		}
	}
	return nil
}
