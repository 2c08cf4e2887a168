package config

// Store layout under the snapfs root directory.
const (
	StoreDir     = ".snapfs"
	ObjectsDir   = "objects"
	SnapshotsDir = "snapshots"
)

// ObjectExt is the file extension of stored content blocks.
const ObjectExt = ".bin"

// ManifestExt is the file extension of persisted snapshot manifests.
const ManifestExt = ".json"

// DefaultOnMismatch is the process default for include globs that match
// nothing: "ignore", "warn" or "error".
const DefaultOnMismatch = "ignore"
