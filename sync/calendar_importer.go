// ABOUTME: Calendar event importer from Google Calendar API
// ABOUTME: Maps upcoming events to meetings and links them to clients
package sync

import (
	"database/sql"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"consultorml/db"
	"consultorml/match"
	"consultorml/models"
	"consultorml/store"
)

const (
	calendarService    = "google_calendar"
	calendarMaxResults = 50
	// DefaultLookaheadDays bounds the event window when none is given.
	DefaultLookaheadDays = 14
)

// CalendarImportResult summarizes one import run.
type CalendarImportResult struct {
	Fetched  int
	Imported int
	Updated  int
	Matched  int
	Skipped  int
}

// shouldSkipEvent reports whether an event is not importable and why.
func shouldSkipEvent(event *calendar.Event) (bool, string) {
	if event == nil {
		return true, "nil event"
	}
	if event.Status == "cancelled" {
		return true, "cancelled"
	}
	if event.Start == nil {
		return true, "missing start time"
	}
	return false, ""
}

// eventRecord builds the matching record for a calendar event.
func eventRecord(event *calendar.Event) match.Record {
	record := match.Record{Title: event.Summary}
	for _, attendee := range event.Attendees {
		if attendee == nil {
			continue
		}
		if attendee.Email != "" {
			record.Participants = append(record.Participants, attendee.Email)
		}
		if attendee.DisplayName != "" {
			record.Participants = append(record.Participants, attendee.DisplayName)
		}
	}
	return record
}

// eventToMeeting maps a calendar event to a meeting. All-day events
// carry "Todo el día" instead of a clock time.
func eventToMeeting(event *calendar.Event) models.Meeting {
	meeting := models.Meeting{
		Summary: event.Summary,
		Notes:   event.Description,
		Link:    event.HangoutLink,
		Provenance: &models.Provenance{
			Source:     models.SourceGoogleCalendar,
			ExternalID: event.Id,
		},
	}
	if meeting.Summary == "" {
		meeting.Summary = "Sin título"
	}
	if meeting.Link == "" {
		meeting.Link = event.HtmlLink
	}

	if event.Start.Date != "" {
		meeting.Date = event.Start.Date
		meeting.Time = "Todo el día"
		return meeting
	}

	if start, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
		meeting.Date = start.Format(models.DateFormat)
		meeting.Time = start.Format("15:04")
	}
	return meeting
}

// ImportCalendar fetches upcoming events and upserts them as meetings.
// Events already imported keep their meeting ID and are updated in place.
func ImportCalendar(database *sql.DB, st *store.Store, client *calendar.Service, strategy match.Strategy, days int) (*CalendarImportResult, error) {
	if days <= 0 {
		days = DefaultLookaheadDays
	}

	if err := db.UpdateSyncStatus(database, calendarService, db.SyncSyncing, nil); err != nil {
		return nil, fmt.Errorf("failed to update sync status: %w", err)
	}

	clients, err := st.ListClients()
	if err != nil {
		errMsg := err.Error()
		_ = db.UpdateSyncStatus(database, calendarService, db.SyncError, &errMsg)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	now := time.Now()
	events, err := client.Events.List("primary").
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, days).Format(time.RFC3339)).
		MaxResults(calendarMaxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		errMsg := fmt.Sprintf("failed to fetch events: %v", err)
		_ = db.UpdateSyncStatus(database, calendarService, db.SyncError, &errMsg)
		return nil, fmt.Errorf("failed to fetch calendar events: %w", err)
	}

	result := &CalendarImportResult{Fetched: len(events.Items)}

	for _, event := range events.Items {
		if skip, _ := shouldSkipEvent(event); skip {
			result.Skipped++
			continue
		}

		meeting := eventToMeeting(event)

		if matched := strategy.Match(eventRecord(event), clients); matched != nil {
			meeting.ClientID = matched.ID
			result.Matched++
		}

		existing, err := st.FindMeetingBySource(models.SourceGoogleCalendar, event.Id)
		if err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, calendarService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to look up meeting: %w", err)
		}
		if existing != nil {
			meeting.ID = existing.ID
			// Never unlink a meeting the consultant already assigned.
			if meeting.ClientID == "" {
				meeting.ClientID = existing.ClientID
			}
			meeting.Notes = existing.Notes
			result.Updated++
		} else {
			meeting.ID = st.NextID("m")
			result.Imported++
		}

		if _, err := st.UpsertMeeting(meeting); err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, calendarService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to save meeting: %w", err)
		}

		if err := db.RecordImport(database, calendarService, event.Id, "meeting", meeting.ID, ""); err != nil {
			errMsg := err.Error()
			_ = db.UpdateSyncStatus(database, calendarService, db.SyncError, &errMsg)
			return nil, fmt.Errorf("failed to record import: %w", err)
		}
	}

	if err := db.MarkSyncComplete(database, calendarService); err != nil {
		return nil, fmt.Errorf("failed to mark sync complete: %w", err)
	}

	return result, nil
}
