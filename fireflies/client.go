// ABOUTME: Fireflies.ai GraphQL client for meeting transcripts
// ABOUTME: Fetches transcript summaries and full speaker-prefixed transcripts
package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.fireflies.ai/graphql"

var (
	// ErrNoAPIKey is checked before any network call.
	ErrNoAPIKey = errors.New("falta la API key de Fireflies (configurá FIREFLIES_API_KEY)")

	ErrTranscriptNotFound = errors.New("transcripción no encontrada")
)

// TranscriptSummary is the list-level view of a Fireflies meeting.
type TranscriptSummary struct {
	ID              string
	Title           string
	Date            string
	Time            string
	DurationMinutes int
	OrganizerEmail  string
	Participants    []string
	Summary         string
	ActionItems     string
}

// TranscriptDetail adds the full speaker-prefixed transcript text.
type TranscriptDetail struct {
	TranscriptSummary
	FullText string
}

type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SetAPIURL overrides the GraphQL endpoint, used by tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any, dest any) error {
	if !c.Configured() {
		return ErrNoAPIKey
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fireflies request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fireflies API error (%d): %s", resp.StatusCode, string(text))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("fireflies: %s", envelope.Errors[0].Message)
	}
	if envelope.Data == nil {
		return fmt.Errorf("fireflies: empty response")
	}

	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	return nil
}

// wireTranscript is the API-shaped transcript record.
type wireTranscript struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Date           int64    `json:"date"`
	Duration       float64  `json:"duration"`
	OrganizerEmail string   `json:"organizer_email"`
	Participants   []string `json:"participants"`
	Summary        *struct {
		Overview    string `json:"overview"`
		ActionItems string `json:"action_items"`
	} `json:"summary"`
	Sentences []struct {
		RawText     string `json:"raw_text"`
		SpeakerName string `json:"speaker_name"`
	} `json:"sentences"`
}

const listQuery = `
	query Transcripts($limit: Int) {
		transcripts(limit: $limit) {
			id
			title
			date
			duration
			organizer_email
			participants
			summary {
				overview
				action_items
			}
		}
	}
`

const detailQuery = `
	query Transcript($id: String!) {
		transcript(id: $id) {
			id
			title
			date
			duration
			organizer_email
			participants
			summary {
				overview
				action_items
			}
			sentences {
				raw_text
				speaker_name
			}
		}
	}
`

// FetchTranscripts returns the most recent transcript summaries.
func (c *Client) FetchTranscripts(ctx context.Context, limit int) ([]TranscriptSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	var data struct {
		Transcripts []wireTranscript `json:"transcripts"`
	}
	if err := c.query(ctx, listQuery, map[string]any{"limit": limit}, &data); err != nil {
		return nil, err
	}

	summaries := make([]TranscriptSummary, 0, len(data.Transcripts))
	for _, t := range data.Transcripts {
		summaries = append(summaries, t.toSummary())
	}
	return summaries, nil
}

// FetchTranscriptDetail returns one transcript with its full text.
func (c *Client) FetchTranscriptDetail(ctx context.Context, transcriptID string) (*TranscriptDetail, error) {
	var data struct {
		Transcript *wireTranscript `json:"transcript"`
	}
	if err := c.query(ctx, detailQuery, map[string]any{"id": transcriptID}, &data); err != nil {
		return nil, err
	}
	if data.Transcript == nil {
		return nil, ErrTranscriptNotFound
	}

	detail := &TranscriptDetail{
		TranscriptSummary: data.Transcript.toSummary(),
		FullText:          joinSentences(data.Transcript),
	}
	return detail, nil
}

func (t *wireTranscript) toSummary() TranscriptSummary {
	s := TranscriptSummary{
		ID:             t.ID,
		Title:          t.Title,
		OrganizerEmail: t.OrganizerEmail,
		Participants:   t.Participants,
	}
	if s.Title == "" {
		s.Title = "Sin título"
	}
	if t.Date > 0 {
		ts := time.UnixMilli(t.Date)
		s.Date = ts.UTC().Format("2006-01-02")
		s.Time = ts.Format("15:04")
	}
	if t.Duration > 0 {
		s.DurationMinutes = int(t.Duration/60 + 0.5)
	}
	if t.Summary != nil {
		s.Summary = t.Summary.Overview
		s.ActionItems = t.Summary.ActionItems
	}
	return s
}

// joinSentences renders "speaker: text" lines, one per sentence.
func joinSentences(t *wireTranscript) string {
	var b bytes.Buffer
	for i, sentence := range t.Sentences {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sentence.SpeakerName)
		b.WriteString(": ")
		b.WriteString(sentence.RawText)
	}
	return b.String()
}
