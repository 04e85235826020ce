// Package store persists high scores between runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File keeps integer scores in a small JSON object on disk. A missing file
// reads as an empty store.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a store backed by the JSON file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the per-user location for the score file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "ropeswing", "scores.json"), nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load returns the value stored under key, or 0 if it has never been saved.
func (f *File) Load(key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.read()
	if err != nil {
		return 0, err
	}
	return values[key], nil
}

// Save stores value under key, keeping the other keys in the file.
func (f *File) Save(key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking new records.
		values = map[string]int{}
	}
	values[key] = value
	return f.write(values)
}

func (f *File) read() (map[string]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	values := map[string]int{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode scores %s: %w", f.path, err)
	}
	return values, nil
}

func (f *File) write(values map[string]int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}

// Memory is an in-process store for headless runs and tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]int{}}
}

// Load returns the value stored under key.
func (m *Memory) Load(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Save stores value under key.
func (m *Memory) Save(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]int{}
	}
	m.values[key] = value
	return nil
}
