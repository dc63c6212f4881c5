package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config describes one record directory
type Config struct {
	Dir string // directory holding one file per record
	Ext string // file extension including the dot, normally ".json"
}

// RecordStore persists records as pretty-printed JSON, one file per
// record. It has no locking: the filesystem is the only coordination,
// which is acceptable for the low-traffic workloads this serves.
type RecordStore struct {
	cfg Config
	log zerolog.Logger
}

// NewRecordStore creates a RecordStore over the given directory
func NewRecordStore(cfg Config, log zerolog.Logger) *RecordStore {
	if cfg.Ext == "" {
		cfg.Ext = ".json"
	}
	return &RecordStore{
		cfg: cfg,
		log: log.With().Str("store", filepath.Base(cfg.Dir)).Logger(),
	}
}

// Dir returns the directory this store writes into
func (s *RecordStore) Dir() string {
	return s.cfg.Dir
}

// Create writes a new record under key, failing with ErrConflict if a
// record for key already exists
func (s *RecordStore) Create(key string, record any) error {
	path, err := securePath(s.cfg.Dir, key, s.cfg.Ext)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConflict, key)
	}
	return s.writeFile(path, record)
}

// Write overwrites the record under key, creating it if absent
func (s *RecordStore) Write(key string, record any) error {
	path, err := securePath(s.cfg.Dir, key, s.cfg.Ext)
	if err != nil {
		return err
	}
	return s.writeFile(path, record)
}

// Append stores a record under a generated key embedding the wall-clock
// time and a sanitized label, and returns the key. Generated keys are
// unique enough in practice; an existing file is never overwritten.
func (s *RecordStore) Append(label string, now time.Time, record any) (string, error) {
	key := TimestampKey(label, now)
	if err := s.Create(key, record); err != nil {
		return "", err
	}
	return key, nil
}

// Read unmarshals the record under key into out. A missing file and a
// file that no longer parses both report ErrNotFound.
func (s *RecordStore) Read(key string, out any) error {
	path, err := securePath(s.cfg.Dir, key, s.cfg.Ext)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Record file is not valid JSON")
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}

// List walks the directory and calls decode once per record file with
// the key and raw contents. A file decode rejects is logged and
// skipped; one corrupt record never fails the whole listing.
func (s *RecordStore) List(decode func(key string, data []byte) error) error {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.cfg.Ext) {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), s.cfg.Ext)
		data, err := os.ReadFile(filepath.Join(s.cfg.Dir, entry.Name()))
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Skipping unreadable record")
			continue
		}
		if err := decode(key, data); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Skipping unparseable record")
		}
	}
	return nil
}

// Delete removes the record under key
func (s *RecordStore) Delete(key string) error {
	path, err := securePath(s.cfg.Dir, key, s.cfg.Ext)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return err
	}
	return nil
}

// Exists reports whether a record is stored under key
func (s *RecordStore) Exists(key string) (bool, error) {
	path, err := securePath(s.cfg.Dir, key, s.cfg.Ext)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *RecordStore) writeFile(path string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TimestampKey derives an append key from the wall clock plus a
// sanitized label, e.g. "2026-08-29T10-15-30-123Z_acme_corp"
func TimestampKey(label string, now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return ts + "_" + SanitizeLabel(label)
}
