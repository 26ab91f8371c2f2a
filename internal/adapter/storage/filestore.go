package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bogdan892/refactoring/internal/core/domain"
)

// FileStore keeps the snapshot in one YAML document on disk. Writes go to a
// temp file first and replace the real one with a rename, so a crash mid-save
// never leaves a corrupt store behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// FindAll loads the full account collection. A missing file is an empty
// store, not an error.
func (s *FileStore) FindAll() ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	accounts := make([]*domain.Account, 0, len(snap.Accounts))
	for _, rec := range snap.Accounts {
		accounts = append(accounts, fromRecord(rec))
	}
	return accounts, nil
}

// Save overwrites the whole document with the given collection.
func (s *FileStore) Save(accounts []*domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{Version: snapshotVersion, SavedAt: time.Now()}
	for _, acc := range accounts {
		snap.Accounts = append(snap.Accounts, toRecord(acc))
	}

	raw, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return os.Rename(tmp, s.path)
}
