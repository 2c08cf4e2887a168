// Package tree resolves glob specifications against a directory tree into a
// deterministic, ordered list of path stats.
package tree

import (
	"fmt"

	"github.com/keshon/snapfs/internal/store/blob"
)

// Kind tags a path as a file or a directory.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// PathStat pairs a symbolic path, relative to the resolution root, with the
// stat metadata needed for digesting. Blocks holds the content
// sub-fingerprints of a file once the digest engine has split it; it is
// always empty for directories.
type PathStat struct {
	Path   string     `json:"path"`
	Kind   Kind       `json:"kind"`
	Size   int64      `json:"size"`
	Blocks []blob.Ref `json:"blocks,omitempty"`
}

// IsFile reports whether the stat is a file entry.
func (p PathStat) IsFile() bool {
	switch p.Kind {
	case KindFile:
		return true
	case KindDir:
		return false
	}
	return false
}
