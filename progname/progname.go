// Package progname tracks the process-wide program name used to prefix
// diagnostic output.
//
// The name is held in a Store that is safe for concurrent use. Readers get
// immutable snapshots, so a name obtained before a concurrent Set keeps
// reporting the old value for as long as the caller holds it. The
// package-level functions operate on a single process-wide store that is
// lazily seeded from the running executable's path.
package progname

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Snapshot is an immutable view of the program name as of one moment. Later
// Set calls on the originating store never change a held Snapshot.
type Snapshot struct {
	name *string
}

// Name returns the snapshot's value and whether a name was present.
func (s Snapshot) Name() (string, bool) {
	if s.name == nil {
		return "", false
	}
	return *s.name, true
}

// String returns the snapshot's value, or "" when the name is absent.
func (s Snapshot) String() string {
	if s.name == nil {
		return ""
	}
	return *s.name
}

// A Store holds an optional program name safe for arbitrary concurrent read
// and write. The zero value is an empty store whose name is absent until the
// first Set.
type Store struct {
	mu      sync.Mutex
	current Snapshot
}

// Set replaces the stored name with the final path component of pathLike;
// input with no separator is kept verbatim. The replacement is a single
// pointer swap under the store lock. Racing writers are serialized by the
// lock with no ordering promise between them; the last lock-acquirer wins.
func (s *Store) Set(pathLike string) {
	name := lastComponent(pathLike)
	s.mu.Lock()
	s.current = Snapshot{name: &name}
	s.mu.Unlock()
}

// Get returns a snapshot of the current name. The lock is held only for the
// pointer copy, never for formatting or I/O.
func (s *Store) Get() Snapshot {
	s.mu.Lock()
	snap := s.current
	s.mu.Unlock()
	return snap
}

// String is shorthand for Get().String().
func (s *Store) String() string {
	return s.Get().String()
}

var (
	defaultOnce  sync.Once
	defaultStore Store
)

// Default returns the process-wide store. The first call from any goroutine
// seeds it from the running executable's path, best effort; a failed lookup
// leaves the name absent and diagnostics degrade to an empty prefix.
func Default() *Store {
	defaultOnce.Do(func() {
		if exe, err := os.Executable(); err == nil {
			defaultStore.Set(exe)
		}
	})
	return &defaultStore
}

// Set replaces the process-wide program name, keeping only the final path
// component of pathLike. Callers conventionally pass os.Args[0] once, early,
// before emitting any diagnostics.
func Set(pathLike string) {
	Default().Set(pathLike)
}

// Get returns a snapshot of the process-wide program name.
func Get() Snapshot {
	return Default().Get()
}

// String returns the process-wide program name, or "" when absent.
func String() string {
	return Default().String()
}

// lastComponent strips any directory prefix from path. Input with no
// path-component structure comes back verbatim.
func lastComponent(path string) string {
	if !strings.ContainsRune(path, filepath.Separator) {
		return path
	}
	return filepath.Base(path)
}
