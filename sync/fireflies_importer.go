// ABOUTME: Fireflies transcript importer
// ABOUTME: Maps meeting transcripts to meetings and links them to clients
package sync

import (
	"context"
	"database/sql"
	"fmt"

	"consultorml/db"
	"consultorml/fireflies"
	"consultorml/match"
	"consultorml/models"
	"consultorml/store"
)

const (
	firefliesService = "fireflies"
	// DefaultTranscriptLimit bounds how many recent transcripts one run pulls.
	DefaultTranscriptLimit = 10
)

// FirefliesImportResult summarizes one import run.
type FirefliesImportResult struct {
	Fetched  int
	Imported int
	Updated  int
	Matched  int
}

// transcriptRecord builds the matching record for a transcript.
func transcriptRecord(tr fireflies.TranscriptSummary) match.Record {
	participants := append([]string{}, tr.Participants...)
	if tr.OrganizerEmail != "" {
		participants = append(participants, tr.OrganizerEmail)
	}
	return match.Record{Title: tr.Title, Participants: participants}
}

// transcriptToMeeting maps a transcript to a meeting, including the
// full transcript text when available.
func transcriptToMeeting(tr fireflies.TranscriptSummary, fullText string) models.Meeting {
	summary := tr.Summary
	if summary == "" && tr.ActionItems != "" {
		summary = "Acciones: " + tr.ActionItems
	}

	return models.Meeting{
		Date:       tr.Date,
		Time:       tr.Time,
		Summary:    summary,
		Transcript: fullText,
		Notes:      tr.Title,
		Provenance: &models.Provenance{
			Source:     models.SourceFireflies,
			ExternalID: tr.ID,
		},
	}
}

// ImportFireflies fetches recent transcripts and upserts them as meetings.
func ImportFireflies(ctx context.Context, database *sql.DB, st *store.Store, client *fireflies.Client, strategy match.Strategy, limit int) (*FirefliesImportResult, error) {
	if limit <= 0 {
		limit = DefaultTranscriptLimit
	}

	if err := db.UpdateSyncStatus(database, firefliesService, db.SyncSyncing, nil); err != nil {
		return nil, fmt.Errorf("failed to update sync status: %w", err)
	}

	clients, err := st.ListClients()
	if err != nil {
		errMsg := err.Error()
		_ = db.UpdateSyncStatus(database, firefliesService, db.SyncError, &errMsg)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	transcripts, err := client.FetchTranscripts(ctx, limit)
	if err != nil {
		errMsg := fmt.Sprintf("failed to fetch transcripts: %v", err)
		_ = db.UpdateSyncStatus(database, firefliesService, db.SyncError, &errMsg)
		return nil, fmt.Errorf("failed to fetch transcripts: %w", err)
	}

	result := &FirefliesImportResult{Fetched: len(transcripts)}

	for _, tr := range transcripts {
		alreadyImported, err := db.ImportLogExists(database, firefliesService, tr.ID)
		if err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, firefliesService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to check import log: %w", err)
		}

		// The full transcript never changes after the fact, so only
		// fetch the detail the first time a transcript comes through.
		fullText := ""
		if !alreadyImported {
			if detail, err := client.FetchTranscriptDetail(ctx, tr.ID); err == nil {
				fullText = detail.FullText
			}
		}

		meeting := transcriptToMeeting(tr, fullText)

		if matched := strategy.Match(transcriptRecord(tr), clients); matched != nil {
			meeting.ClientID = matched.ID
			result.Matched++
		}

		existing, err := st.FindMeetingBySource(models.SourceFireflies, tr.ID)
		if err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, firefliesService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to look up meeting: %w", err)
		}
		if existing != nil {
			// Never discard what the consultant already wrote on the meeting.
			meeting.ID = existing.ID
			if meeting.ClientID == "" {
				meeting.ClientID = existing.ClientID
			}
			if existing.Notes != "" {
				meeting.Notes = existing.Notes
			}
			if meeting.Transcript == "" {
				meeting.Transcript = existing.Transcript
			}
			result.Updated++
		} else {
			meeting.ID = st.NextID("m")
			result.Imported++
		}

		if _, err := st.UpsertMeeting(meeting); err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, firefliesService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to save meeting: %w", err)
		}

		if err := db.RecordImport(database, firefliesService, tr.ID, "meeting", meeting.ID, ""); err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, firefliesService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to record import: %w", err)
		}
	}

	if err := db.MarkSyncComplete(database, firefliesService); err != nil {
		return nil, fmt.Errorf("failed to mark sync complete: %w", err)
	}

	return result, nil
}
