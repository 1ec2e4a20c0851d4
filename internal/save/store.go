package save

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

// CorruptSuffix is appended to a slot that failed to decode.
const CorruptSuffix = ".corrupt"

// FileStore is a single JSON slot on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: filepath.Clean(path)}
}

func (s *FileStore) Path() string { return s.path }

// Save writes st to a sibling temp file and renames it over the slot, so a
// crash mid-write leaves the previous save intact.
func (s *FileStore) Save(st game.State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("save: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save: rename into %s: %w", s.path, err)
	}
	return nil
}

// Load reads the slot. ok is false when no slot exists. A slot that exists
// but cannot be decoded returns an error matching ErrCorrupt.
func (s *FileStore) Load() (st game.State, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.State{}, false, nil
	}
	if err != nil {
		return game.State{}, false, fmt.Errorf("save: read %s: %w", s.path, err)
	}
	st, err = Decode(data)
	if err != nil {
		return game.State{}, false, fmt.Errorf("save: %s: %w", s.path, err)
	}
	return st, true, nil
}

// Quarantine moves the slot aside to <path>.corrupt, replacing any earlier
// quarantined copy.
func (s *FileStore) Quarantine() (string, error) {
	dst := s.path + CorruptSuffix
	if err := os.Rename(s.path, dst); err != nil {
		return "", fmt.Errorf("save: quarantine %s: %w", s.path, err)
	}
	return dst, nil
}

// Resume loads the slot for startup. A corrupt slot is quarantined and
// reported as absent so the player starts fresh; only I/O failures are
// returned as errors.
func (s *FileStore) Resume(logger *log.Logger) (game.State, bool, error) {
	st, ok, err := s.Load()
	if err == nil {
		return st, ok, nil
	}
	if !errors.Is(err, ErrCorrupt) {
		return game.State{}, false, err
	}
	dst, qerr := s.Quarantine()
	if qerr != nil {
		return game.State{}, false, errors.Join(err, qerr)
	}
	if logger != nil {
		logger.Printf("warning: %v; moved to %s, starting fresh", err, dst)
	}
	return game.State{}, false, nil
}
