// internal/storage/json.go

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperr "shawl/internal/error"
)

const (
	DefaultFilePerms = 0600
	BackupSuffix     = ".old"
)

// JSONStore keeps all values in a single JSON object file. Every Set rewrites
// the file, so the file always mirrors the last write. The first write after
// opening copies the file as it was to <path>.old.
type JSONStore struct {
	mu       sync.Mutex
	path     string
	values   map[string]string
	backedUp bool
}

// OpenJSON loads the store at path. A missing file is an empty store.
func OpenJSON(path string) (*JSONStore, error) {
	if path == "" {
		return nil, apperr.New(apperr.ConfigError, "state file path is empty", nil)
	}
	s := &JSONStore{
		path:   path,
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return apperr.New(apperr.StorageError, "failed to read state file", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return apperr.New(apperr.StorageError, "failed to parse state file", err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

func (s *JSONStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *JSONStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		// Przywróć poprzednią wartość
		if existed {
			s.values[key] = old
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }

// save writes the file through a temp file. The version found at open time
// is kept as .old.
func (s *JSONStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return apperr.New(apperr.StorageError, "failed to create state directory", err)
	}

	data, err := json.MarshalIndent(s.values, "", "    ")
	if err != nil {
		return apperr.New(apperr.StorageError, "failed to marshal state", err)
	}

	if !s.backedUp {
		if err := backupFile(s.path); err != nil {
			return err
		}
		s.backedUp = true
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperr.New(apperr.StorageError, "failed to create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperr.New(apperr.StorageError, "failed to write state file", err)
	}
	if err := tmp.Chmod(DefaultFilePerms); err != nil {
		tmp.Close()
		return apperr.New(apperr.StorageError, "failed to set state file permissions", err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.New(apperr.StorageError, "failed to write state file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return apperr.New(apperr.StorageError, "failed to replace state file", err)
	}
	return nil
}

// backupFile copies path to path+".old". A missing file is not an error.
func backupFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return apperr.New(apperr.StorageError, "error reading state file", err)
	}
	if err := os.WriteFile(path+BackupSuffix, content, DefaultFilePerms); err != nil {
		return apperr.New(apperr.StorageError, fmt.Sprintf("error creating backup %s", path+BackupSuffix), err)
	}
	return nil
}

// RestoreBackup replaces the state file with its .old copy, the state as it
// was before the last session that wrote to it.
func RestoreBackup(path string) error {
	backupPath := path + BackupSuffix
	if _, err := os.Stat(backupPath); err != nil {
		return apperr.New(apperr.StorageError, "no backup to restore", err)
	}
	if err := os.Rename(backupPath, path); err != nil {
		return apperr.New(apperr.StorageError, "error restoring state from backup", err)
	}
	return nil
}
