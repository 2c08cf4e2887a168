package blob

import (
	"context"

	"github.com/keshon/snapfs/internal/util"
)

// Status indicates the state of a stored block.
type Status int

const (
	OK Status = iota
	Missing
	Damaged
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Missing:
		return "missing"
	case Damaged:
		return "damaged"
	}
	return "unknown"
}

// Check holds the verification result for a single block.
type Check struct {
	Hash   string
	Status Status
}

// Verify checks a set of block fingerprints concurrently and streams
// results. VerifyBlock maps read errors into a Status, so the whole set is
// always processed. Cancelling ctx stops the producers even when the
// consumer no longer drains; the channel always closes.
func (s *Store) Verify(ctx context.Context, hashes map[string]struct{}, workers int) <-chan Check {
	out := make(chan Check, 128)
	if workers <= 0 {
		workers = util.WorkerCount()
	}

	go func() {
		defer close(out)

		list := util.SortedKeys(hashes)
		_ = util.Parallel(list, workers, func(h string) error {
			status, _ := s.VerifyBlock(h)
			select {
			case out <- Check{Hash: h, Status: status}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()

	return out
}

// VerifyBlock recomputes a single block's fingerprint. Blocks are modestly
// sized (<= maxBlockSize), so reading into memory is fine.
func (s *Store) VerifyBlock(hash string) (Status, error) {
	data, err := s.FS.ReadFile(s.objectPath(hash))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return Missing, nil
		}
		return Damaged, err
	}

	if Fingerprint(data) == hash {
		return OK, nil
	}
	return Damaged, nil
}
