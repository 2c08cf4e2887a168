// Package pathspec holds the glob specification value objects used to select
// paths for snapshotting. Constructing a Spec never touches the filesystem;
// all matching errors surface during resolution.
package pathspec

import (
	"fmt"
	"sync"
)

// MatchErrorBehavior is the policy applied when an include glob matches
// zero paths during resolution.
type MatchErrorBehavior int

const (
	// BehaviorUnspecified resolves to the process default at construction.
	BehaviorUnspecified MatchErrorBehavior = iota
	// BehaviorIgnore proceeds silently.
	BehaviorIgnore
	// BehaviorWarn proceeds but emits a non-fatal diagnostic.
	BehaviorWarn
	// BehaviorError fails resolution with a MatchError.
	BehaviorError
)

func (b MatchErrorBehavior) String() string {
	switch b {
	case BehaviorUnspecified:
		return "unspecified"
	case BehaviorIgnore:
		return "ignore"
	case BehaviorWarn:
		return "warn"
	case BehaviorError:
		return "error"
	}
	return fmt.Sprintf("MatchErrorBehavior(%d)", int(b))
}

// ParseBehavior maps a configuration string to a MatchErrorBehavior.
func ParseBehavior(s string) (MatchErrorBehavior, error) {
	switch s {
	case "", "unspecified":
		return BehaviorUnspecified, nil
	case "ignore":
		return BehaviorIgnore, nil
	case "warn":
		return BehaviorWarn, nil
	case "error":
		return BehaviorError, nil
	}
	return BehaviorUnspecified, fmt.Errorf("unknown glob match error behavior %q", s)
}

var (
	defaultMu       sync.RWMutex
	defaultBehavior = BehaviorIgnore
)

// SetDefaultBehavior installs the process-wide default used when a Spec is
// built without an explicit behavior. Intended to be called once at startup
// from configuration.
func SetDefaultBehavior(b MatchErrorBehavior) {
	if b == BehaviorUnspecified {
		b = BehaviorIgnore
	}
	defaultMu.Lock()
	defaultBehavior = b
	defaultMu.Unlock()
}

// DefaultBehavior returns the process-wide default policy.
func DefaultBehavior() MatchErrorBehavior {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBehavior
}

// Spec pairs include and exclude glob lists with a zero-match policy.
// The glob syntax is roughly git's: `*` within one path segment, `?` for a
// single character, `**` across segments. Excludes remove matches of the
// includes; they are never subject to the zero-match policy.
//
// A Spec is immutable once constructed.
type Spec struct {
	include    []string
	exclude    []string
	onMismatch MatchErrorBehavior
}

// New builds a Spec. The include and exclude slices are copied once here;
// an unspecified behavior resolves against the process default.
func New(include, exclude []string, onMismatch MatchErrorBehavior) Spec {
	if onMismatch == BehaviorUnspecified {
		onMismatch = DefaultBehavior()
	}
	return Spec{
		include:    append([]string(nil), include...),
		exclude:    append([]string(nil), exclude...),
		onMismatch: onMismatch,
	}
}

// Include returns the include globs in construction order.
func (s Spec) Include() []string {
	return append([]string(nil), s.include...)
}

// Exclude returns the exclude globs in construction order.
func (s Spec) Exclude() []string {
	return append([]string(nil), s.exclude...)
}

// OnMismatch returns the resolved zero-match policy.
func (s Spec) OnMismatch() MatchErrorBehavior {
	return s.onMismatch
}

// WithMatchErrorBehavior returns a new Spec sharing the include/exclude
// lists under a different policy. The receiver is not modified.
func (s Spec) WithMatchErrorBehavior(b MatchErrorBehavior) Spec {
	return New(s.include, s.exclude, b)
}

// Request pairs a Spec with the root directory it resolves against.
type Request struct {
	Spec Spec
	Root string
}

// MatchError reports an include glob that matched nothing under the
// BehaviorError policy.
type MatchError struct {
	Pattern string
	Root    string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("glob %q matched no paths under root %q", e.Pattern, e.Root)
}
