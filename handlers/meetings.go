// ABOUTME: Meeting MCP tool handlers
// ABOUTME: Implements add_meeting and list_meetings tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"consultorml/models"
	"consultorml/store"
)

type MeetingHandlers struct {
	store *store.Store
}

func NewMeetingHandlers(st *store.Store) *MeetingHandlers {
	return &MeetingHandlers{store: st}
}

type AddMeetingInput struct {
	ClientID string `json:"client_id" jsonschema:"Client ID the meeting belongs to"`
	Date     string `json:"date" jsonschema:"Meeting date (YYYY-MM-DD)"`
	Time     string `json:"time,omitempty" jsonschema:"Meeting time (HH:MM)"`
	Type     string `json:"type,omitempty" jsonschema:"Meeting type (Onboarding, Estrategia, Performance, Urgencia)"`
	Link     string `json:"link,omitempty" jsonschema:"Video call link"`
	Summary  string `json:"summary,omitempty" jsonschema:"Short meeting summary"`
	Notes    string `json:"notes,omitempty" jsonschema:"Free-form notes"`
}

type MeetingOutput struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id,omitempty"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Type     string `json:"type,omitempty"`
	Link     string `json:"link,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Source   string `json:"source,omitempty"`
}

func (h *MeetingHandlers) AddMeeting(_ context.Context, request *mcp.CallToolRequest, input AddMeetingInput) (*mcp.CallToolResult, MeetingOutput, error) {
	if input.ClientID == "" {
		return nil, MeetingOutput{}, fmt.Errorf("client_id is required")
	}
	if input.Date == "" {
		return nil, MeetingOutput{}, fmt.Errorf("date is required")
	}
	if _, err := h.store.GetClient(input.ClientID); err != nil {
		return nil, MeetingOutput{}, fmt.Errorf("client not found: %s", input.ClientID)
	}

	meeting := models.Meeting{
		ID:       h.store.NextID("m"),
		ClientID: input.ClientID,
		Date:     input.Date,
		Time:     input.Time,
		Type:     input.Type,
		Link:     input.Link,
		Summary:  input.Summary,
		Notes:    input.Notes,
	}

	saved, err := h.store.UpsertMeeting(meeting)
	if err != nil {
		return nil, MeetingOutput{}, fmt.Errorf("failed to save meeting: %w", err)
	}

	return nil, meetingToOutput(saved), nil
}

type ListMeetingsInput struct {
	ClientID string `json:"client_id,omitempty" jsonschema:"Filter by client ID; omit for all meetings"`
}

type ListMeetingsOutput struct {
	Meetings []MeetingOutput `json:"meetings"`
}

func (h *MeetingHandlers) ListMeetings(_ context.Context, request *mcp.CallToolRequest, input ListMeetingsInput) (*mcp.CallToolResult, ListMeetingsOutput, error) {
	var (
		meetings []models.Meeting
		err      error
	)
	if input.ClientID != "" {
		meetings, err = h.store.ListMeetingsByClient(input.ClientID)
	} else {
		meetings, err = h.store.ListMeetings()
	}
	if err != nil {
		return nil, ListMeetingsOutput{}, fmt.Errorf("failed to list meetings: %w", err)
	}

	out := ListMeetingsOutput{Meetings: make([]MeetingOutput, len(meetings))}
	for i, meeting := range meetings {
		out.Meetings[i] = meetingToOutput(meeting)
	}
	return nil, out, nil
}

func meetingToOutput(meeting models.Meeting) MeetingOutput {
	out := MeetingOutput{
		ID:       meeting.ID,
		ClientID: meeting.ClientID,
		Date:     meeting.Date,
		Time:     meeting.Time,
		Type:     meeting.Type,
		Link:     meeting.Link,
		Summary:  meeting.Summary,
		Notes:    meeting.Notes,
	}
	if meeting.Provenance != nil {
		out.Source = meeting.Provenance.Source
	}
	return out
}
