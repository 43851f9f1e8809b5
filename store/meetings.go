// ABOUTME: Meeting collection operations
// ABOUTME: Upserts by id or by external provenance for idempotent imports
package store

import (
	"sort"

	"consultorml/models"
)

func (s *Store) ListMeetings() ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := s.loadCollection(keyMeetings, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// ListMeetingsByClient returns a client's meetings sorted most recent
// first. Dangling client ids simply yield an empty list.
func (s *Store) ListMeetingsByClient(clientID string) ([]models.Meeting, error) {
	meetings, err := s.ListMeetings()
	if err != nil {
		return nil, err
	}
	var out []models.Meeting
	for _, m := range meetings {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (s *Store) UpsertMeeting(meeting models.Meeting) (models.Meeting, error) {
	if meeting.ID == "" {
		meeting.ID = s.NextID("m")
	}

	meetings, err := s.ListMeetings()
	if err != nil {
		return models.Meeting{}, err
	}

	replaced := false
	for i := range meetings {
		if meetings[i].ID == meeting.ID {
			meetings[i] = meeting
			replaced = true
			break
		}
	}
	if !replaced {
		meetings = append(meetings, meeting)
	}

	if err := s.saveCollection(keyMeetings, meetings); err != nil {
		return models.Meeting{}, err
	}
	return meeting, nil
}

// FindMeetingBySource locates a previously imported meeting by its
// external source and id, so re-imports update instead of duplicating.
// Returns (nil, nil) when no meeting carries that provenance.
func (s *Store) FindMeetingBySource(source, externalID string) (*models.Meeting, error) {
	meetings, err := s.ListMeetings()
	if err != nil {
		return nil, err
	}
	for i := range meetings {
		p := meetings[i].Provenance
		if p != nil && p.Source == source && p.ExternalID == externalID {
			return &meetings[i], nil
		}
	}
	return nil, nil
}
