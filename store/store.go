package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"endofind-updater/models"
)

// Store persists the surgeon list and the run history as JSON documents.
// Writes go through a temp file and rename so a failed run cannot leave a
// half-written file behind.
type Store struct {
	dataPath     string
	logPath      string
	historyLimit int
}

func New(dataPath, logPath string, historyLimit int) *Store {
	return &Store{
		dataPath:     dataPath,
		logPath:      logPath,
		historyLimit: historyLimit,
	}
}

// Load reads the surgeon list. A missing file is a fresh start, not an
// error; an unreadable or corrupt file is.
func (s *Store) Load() ([]models.Surgeon, error) {
	data, err := os.ReadFile(s.dataPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Surgeon{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.dataPath, err)
	}

	var surgeons []models.Surgeon
	if err := json.Unmarshal(data, &surgeons); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.dataPath, err)
	}
	return surgeons, nil
}

// Save overwrites the surgeon list.
func (s *Store) Save(surgeons []models.Surgeon) error {
	if err := writeJSONAtomic(s.dataPath, surgeons); err != nil {
		return fmt.Errorf("failed to save surgeon list: %w", err)
	}
	return nil
}

// AppendRunSummary adds one run to the history, keeping only the most
// recent historyLimit entries.
func (s *Store) AppendRunSummary(summary models.RunSummary) error {
	history, err := s.loadHistory()
	if err != nil {
		return err
	}

	history = append(history, summary)
	if len(history) > s.historyLimit {
		history = history[len(history)-s.historyLimit:]
	}

	if err := writeJSONAtomic(s.logPath, history); err != nil {
		return fmt.Errorf("failed to save run history: %w", err)
	}
	return nil
}

func (s *Store) loadHistory() ([]models.RunSummary, error) {
	data, err := os.ReadFile(s.logPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.logPath, err)
	}

	var history []models.RunSummary
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.logPath, err)
	}
	return history, nil
}

// writeJSONAtomic marshals v and replaces path in one rename.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
