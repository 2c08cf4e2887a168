package snapshot

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/keshon/snapfs/internal/store/blob"
	"github.com/keshon/snapfs/internal/store/tree"
)

// Digest identifies a resolved tree: the fingerprint of its canonical
// serialization and the serialization's byte length. Digests compare by
// value; equal fingerprints mean equal trees.
type Digest struct {
	Fingerprint     string `json:"fingerprint"`
	SerializedBytes int64  `json:"serialized_bytes"`
}

func (d Digest) String() string {
	return fmt.Sprintf("Digest(fingerprint=%.8s, serialized_bytes=%d)", d.Fingerprint, d.SerializedBytes)
}

var (
	emptyOnce   sync.Once
	emptyDigest Digest
)

// EmptyDigest is the digest of the zero-entry tree. It is derived by running
// the content hash over zero bytes, never from a pasted literal, so it can
// not drift from the hash implementation.
func EmptyDigest() Digest {
	emptyOnce.Do(func() {
		emptyDigest = Digest{Fingerprint: blob.Fingerprint(nil), SerializedBytes: 0}
	})
	return emptyDigest
}

// Compute serializes the ordered stats canonically and fingerprints the
// result. Zero stats short-circuit to the published empty digest.
func Compute(stats []tree.PathStat) Digest {
	if len(stats) == 0 {
		return EmptyDigest()
	}
	data := serialize(stats)
	return Digest{
		Fingerprint:     blob.Fingerprint(data),
		SerializedBytes: int64(len(data)),
	}
}

// serialize emits one record per stat in the order given. Directories are
// explicit nodes; files carry their size and content block fingerprints, so
// content of any length is represented by fixed-width sub-fingerprints.
// Callers are responsible for sorted, deduplicated input — the resolver
// guarantees both.
func serialize(stats []tree.PathStat) []byte {
	var b bytes.Buffer
	for _, s := range stats {
		switch s.Kind {
		case tree.KindDir:
			fmt.Fprintf(&b, "D %s\n", s.Path)
		case tree.KindFile:
			fmt.Fprintf(&b, "F %s %d", s.Path, s.Size)
			for _, r := range s.Blocks {
				b.WriteByte(' ')
				b.WriteString(r.Hash)
			}
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}
