package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
)

// Sentinel errors callers can test with errors.Is.
var (
	// ErrNotFound indicates the manifest file does not exist.
	ErrNotFound = errors.New("manifest not found")
	// ErrInvalid indicates the manifest file exists but could not be parsed.
	ErrInvalid = errors.New("invalid manifest")
)

// Track is one audio item: a display name and an opaque path fragment.
// Path is never validated or normalized; it is combined verbatim with the
// manifest prefix to form the track URL.
type Track struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Manifest describes a track listing. Songs order is presentation order and
// is preserved across load/save round-trips.
type Manifest struct {
	Title  string  `json:"title"`
	Prefix string  `json:"prefix"`
	Songs  []Track `json:"songs"`
}

// Default returns the empty template seed.
func Default() Manifest {
	return Manifest{Songs: []Track{}}
}

// Load reads and parses a manifest file. A missing file is reported as
// ErrNotFound, a malformed one as ErrInvalid; both are wrapped with the path.
func Load(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open manifest %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open manifest %s: %w", path, err)
	}
	defer file.Close()

	var m Manifest
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w (%v)", path, ErrInvalid, err)
	}
	if m.Songs == nil {
		m.Songs = []Track{}
	}
	return &m, nil
}

// Save writes the manifest in canonical pretty form: two-space indent,
// declaration field order, trailing newline. A crash mid-write may leave a
// partial file; no stronger guarantee is made.
func Save(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// Update runs a read-modify-write cycle on the manifest at path while holding
// its lock file. The lock lives next to the manifest so separate CLI
// invocations editing the same file serialize against each other.
func Update(path string, fn func(*Manifest) error) error {
	return withLock(path, func() error {
		m, err := Load(path)
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		return Save(path, m)
	})
}

// Write stores the given manifest at path while holding its lock file. Unlike
// Update it does not require the file to exist beforehand.
func Write(path string, m *Manifest) error {
	return withLock(path, func() error {
		return Save(path, m)
	})
}

func withLock(path string, fn func() error) error {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire manifest lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("manifest %s is being edited by another process", path)
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}
