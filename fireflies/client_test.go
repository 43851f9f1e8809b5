package fireflies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("ff-test")
	c.apiURL = server.URL
	return c
}

func TestFetchTranscripts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer ff-test" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(req.Query, "transcripts(limit: $limit)") {
			t.Errorf("unexpected query:\n%s", req.Query)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"transcripts": []map[string]any{
					{
						"id":              "tr1",
						"title":           "Reunión TechStore",
						"date":            1760000000000,
						"duration":        1800,
						"organizer_email": "consultor@example.com",
						"participants":    []string{"info@techstore.com.ar"},
						"summary": map[string]string{
							"overview":     "Se habló de ads.",
							"action_items": "Subir pujas",
						},
					},
					{"id": "tr2"},
				},
			},
		})
	})

	transcripts, err := client.FetchTranscripts(context.Background(), 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(transcripts) != 2 {
		t.Fatalf("expected 2 transcripts, got %d", len(transcripts))
	}

	first := transcripts[0]
	if first.Title != "Reunión TechStore" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Date != "2025-10-09" {
		t.Errorf("unexpected date %q", first.Date)
	}
	if first.DurationMinutes != 30 {
		t.Errorf("expected 30 minutes, got %d", first.DurationMinutes)
	}
	if first.Summary != "Se habló de ads." || first.ActionItems != "Subir pujas" {
		t.Errorf("summary not mapped: %+v", first)
	}

	// Missing fields get defaults, not failures.
	second := transcripts[1]
	if second.Title != "Sin título" {
		t.Errorf("expected default title, got %q", second.Title)
	}
	if second.Date != "" || second.DurationMinutes != 0 {
		t.Errorf("expected empty defaults, got %+v", second)
	}
}

func TestFetchTranscriptDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"transcript": map[string]any{
					"id":    "tr1",
					"title": "Kickoff",
					"sentences": []map[string]string{
						{"speaker_name": "Ana", "raw_text": "Hola a todos"},
						{"speaker_name": "Luis", "raw_text": "Arranquemos"},
					},
				},
			},
		})
	})

	detail, err := client.FetchTranscriptDetail(context.Background(), "tr1")
	if err != nil {
		t.Fatal(err)
	}
	expected := "Ana: Hola a todos\nLuis: Arranquemos"
	if detail.FullText != expected {
		t.Errorf("unexpected full text:\n%s", detail.FullText)
	}
}

func TestFetchTranscriptDetailNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"transcript": nil},
		})
	})

	_, err := client.FetchTranscriptDetail(context.Background(), "nope")
	if err != ErrTranscriptNotFound {
		t.Fatalf("expected ErrTranscriptNotFound, got %v", err)
	}
}

func TestGraphQLErrorSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{{"message": "invalid api key"}},
		})
	})

	_, err := client.FetchTranscripts(context.Background(), 10)
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("expected graphql error, got %v", err)
	}
}

func TestMissingKey(t *testing.T) {
	client := NewClient("")
	_, err := client.FetchTranscripts(context.Background(), 10)
	if err != ErrNoAPIKey {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}
