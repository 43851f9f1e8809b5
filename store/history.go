// ABOUTME: Per-client spreadsheet analysis history log
// ABOUTME: The only collection that supports deletion
package store

import (
	"time"

	"github.com/google/uuid"

	"consultorml/models"
)

// ListAnalyses returns a client's analysis history, oldest first.
func (s *Store) ListAnalyses(clientID string) ([]models.AnalysisEntry, error) {
	var entries []models.AnalysisEntry
	if err := s.loadCollection(historyPrefix+clientID, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendAnalysis records a spreadsheet analysis against a client. A
// missing id and timestamp are filled in.
func (s *Store) AppendAnalysis(clientID string, entry models.AnalysisEntry) (models.AnalysisEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entries, err := s.ListAnalyses(clientID)
	if err != nil {
		return models.AnalysisEntry{}, err
	}
	entries = append(entries, entry)

	if err := s.saveCollection(historyPrefix+clientID, entries); err != nil {
		return models.AnalysisEntry{}, err
	}
	return entry, nil
}

// RemoveAnalysis deletes one history entry.
func (s *Store) RemoveAnalysis(clientID, entryID string) error {
	entries, err := s.ListAnalyses(clientID)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == entryID {
			entries = append(entries[:i], entries[i+1:]...)
			return s.saveCollection(historyPrefix+clientID, entries)
		}
	}
	return ErrNotFound
}
