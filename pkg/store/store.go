// Copyright (c) 2026, the modelver authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/modelver/modelver/pkg/defaults"
	"github.com/modelver/modelver/pkg/version"
)

// Error types for store operations.
var (
	// ErrVersionExists indicates the exact version is already present in
	// the store. Comparison excludes build metadata.
	ErrVersionExists = errors.New("version already exists")

	// ErrNoVersions indicates the store holds no versions yet.
	ErrNoVersions = errors.New("no versions in store")

	// ErrUnrecognizedEntry indicates a subdirectory name that does not
	// parse as a version. Only returned in strict mode; the default is to
	// skip such entries, since the directory may hold unrelated content.
	ErrUnrecognizedEntry = errors.New("unrecognized directory entry")
)

// Store tracks the version history of one model as subdirectories of a
// root directory, one per version, named by the version's canonical string.
//
// The directory is the source of truth; Store keeps a read-through cache of
// the parsed history and updates it after every successful mutation. Store
// assumes single-writer usage: two processes adding the same version
// concurrently can both pass the duplicate check before either creates the
// directory. The create itself still fails for the loser because Mkdir
// refuses existing paths, but no cross-process ordering is guaranteed.
type Store struct {
	path    string
	strict  bool
	dirMode os.FileMode

	mu      sync.RWMutex
	history []version.Version // ascending
	scanned bool
}

// Option configures a Store.
type Option func(*Store)

// WithStrict makes History fail on subdirectory names that do not parse as
// versions instead of skipping them.
func WithStrict() Option {
	return func(s *Store) {
		s.strict = true
	}
}

// WithDirMode sets the permission bits used when creating directories.
// Default is 0o755.
func WithDirMode(mode os.FileMode) Option {
	return func(s *Store) {
		s.dirMode = mode
	}
}

// New creates a Store bound to the given root directory, creating the
// directory if it does not exist.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}

	s := &Store{
		path:    path,
		dirMode: defaults.DirMode,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(path, s.dirMode); err != nil {
		return nil, fmt.Errorf("failed to create store directory %q: %w", path, err)
	}

	slog.Debug("store bound", "path", path, "strict", s.strict)
	return s, nil
}

// Root returns the bound root directory.
func (s *Store) Root() string {
	return s.path
}

// Path returns the directory path a version occupies (or would occupy)
// under the store root.
func (s *Store) Path(v version.Version) string {
	return filepath.Join(s.path, v.String())
}

// History returns all versions found in the store, ascending.
// The first call scans the directory; later calls serve the cache until a
// mutation or Refresh invalidates it. The returned slice is a copy.
func (s *Store) History() ([]version.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureScannedLocked(); err != nil {
		return nil, err
	}

	out := make([]version.Version, len(s.history))
	copy(out, s.history)
	return out, nil
}

// Latest returns the newest version in the store.
// Returns ErrNoVersions when the store is empty.
func (s *Store) Latest() (version.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureScannedLocked(); err != nil {
		return version.Version{}, err
	}
	if len(s.history) == 0 {
		return version.Version{}, fmt.Errorf("%w: %s", ErrNoVersions, s.path)
	}
	return s.history[len(s.history)-1], nil
}

// AddString parses the given version string and adds it to the store.
// Parse failures surface version.ErrInvalidVersion before any filesystem
// mutation.
func (s *Store) AddString(raw string) (version.Version, error) {
	v, err := version.Parse(raw)
	if err != nil {
		return version.Version{}, err
	}
	if err := s.Add(v); err != nil {
		return version.Version{}, err
	}
	return v, nil
}

// Add records a new version by creating its directory under the store root.
//
// The version must not already exist in the store: duplicates are rejected
// with ErrVersionExists by exact equality (build metadata excluded). Add
// does not require the version to be newer than Latest — callers wanting a
// strictly increasing sequence use Create, or compose Latest and Bump
// themselves. All checks complete before the single directory creation;
// nothing is mutated on any failure path.
func (s *Store) Add(v version.Version) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: %+v", version.ErrInvalidVersion, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureScannedLocked(); err != nil {
		return err
	}

	for _, existing := range s.history {
		if existing.Equals(v) {
			return fmt.Errorf("%w: %s in %s", ErrVersionExists, v, s.path)
		}
	}

	dir := filepath.Join(s.path, v.String())
	if err := os.Mkdir(dir, s.dirMode); err != nil {
		return fmt.Errorf("failed to create version directory %q: %w", dir, err)
	}

	s.history = append(s.history, v)
	version.Sort(s.history)
	versionsCreated.Inc()

	slog.Info("version created", "version", v.String(), "path", dir)
	return nil
}

// Init seeds an empty store with the initial development version
// (defaults.InitialVersion) and returns it.
func (s *Store) Init() (version.Version, error) {
	v := version.MustParse(defaults.InitialVersion)
	if err := s.Add(v); err != nil {
		return version.Version{}, err
	}
	return v, nil
}

// Next returns the version a bump of the given kind would produce from the
// latest version, without mutating the store.
func (s *Store) Next(kind version.Kind) (version.Version, error) {
	latest, err := s.Latest()
	if err != nil {
		return version.Version{}, err
	}
	return latest.Bump(kind), nil
}

// Create allocates the next version of the given kind: it bumps the latest
// version and adds the result. This is the strictly-increasing workflow on
// top of Add's duplicate-only checking.
func (s *Store) Create(kind version.Kind) (version.Version, error) {
	next, err := s.Next(kind)
	if err != nil {
		return version.Version{}, err
	}
	if err := s.Add(next); err != nil {
		return version.Version{}, err
	}
	return next, nil
}

// Refresh drops the cached history so the next read rescans the directory.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanned = false
	s.history = nil
}

// ensureScannedLocked populates the history cache from the directory on
// first use. Callers must hold s.mu.
func (s *Store) ensureScannedLocked() error {
	if s.scanned {
		cacheHits.Inc()
		return nil
	}
	cacheMisses.Inc()

	start := time.Now()
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return fmt.Errorf("failed to list store directory %q: %w", s.path, err)
	}

	history := make([]version.Version, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := version.Parse(entry.Name())
		if err != nil {
			if s.strict {
				return fmt.Errorf("%w: %q: %w", ErrUnrecognizedEntry, entry.Name(), err)
			}
			slog.Debug("skipping non-version entry", "name", entry.Name(), "path", s.path)
			continue
		}
		history = append(history, v)
	}

	version.Sort(history)
	s.history = history
	s.scanned = true
	scanDuration.Observe(time.Since(start).Seconds())

	slog.Debug("store scanned",
		"path", s.path,
		"entries", len(entries),
		"versions", len(history))
	return nil
}
