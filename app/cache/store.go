package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lysyi3m/coronactl/app/outbreak"
)

var (
	// ErrNotFound means no snapshot has ever been cached at this location.
	ErrNotFound = errors.New("no cached data")

	// ErrCorrupt means a cache file exists but does not decode into a valid
	// snapshot.
	ErrCorrupt = errors.New("cached data is corrupt")
)

const fileName = "data.json"

// Store persists one snapshot as a single JSON document. Saves replace the
// whole file; there is no merging and no expiry, so an arbitrarily old
// snapshot remains valid offline input.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir selects
// <user-cache-dir>/coronactl.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate user cache directory: %w", err)
		}
		dir = filepath.Join(base, "coronactl")
	}
	return &Store{dir: dir}, nil
}

// Path returns the location of the cache file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Save serializes the snapshot, creating the cache directory if needed and
// overwriting any previous snapshot unconditionally.
func (s *Store) Save(snapshot *outbreak.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	slog.Debug("Snapshot cached", "path", s.Path(), "bytes", len(data))
	return nil
}

// Load reads the cached snapshot back. ErrNotFound when no file exists,
// ErrCorrupt when the content does not decode into a snapshot with a valid
// table.
func (s *Store) Load() (*outbreak.Snapshot, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var snapshot outbreak.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snapshot.Table == nil || snapshot.Table.Len() == 0 {
		return nil, fmt.Errorf("%w: snapshot has no table", ErrCorrupt)
	}

	return &snapshot, nil
}
