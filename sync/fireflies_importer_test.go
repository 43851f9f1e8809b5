// ABOUTME: Tests for the Fireflies transcript importer
// ABOUTME: Verifies meeting mapping, dedupe, and client linking end to end
package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "consultorml/db"
	"consultorml/fireflies"
	"consultorml/match"
	"consultorml/models"
	"consultorml/store"
)

func firefliesStub(t *testing.T) *fireflies.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(req.Query, "sentences") {
			_, _ = w.Write([]byte(`{"data":{"transcript":{
				"id":"tr-1","title":"Llamada TechStore","date":1760000000000,"duration":1800,
				"sentences":[{"speaker_name":"María","raw_text":"Hola"}]}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"transcripts":[{
			"id":"tr-1","title":"Llamada TechStore","date":1760000000000,"duration":1800,
			"organizer_email":"maria@techstore.com",
			"participants":["maria@techstore.com","consultor@example.com"],
			"summary":{"overview":"Se revisaron los KPIs.","action_items":"Subir stock"}}]}}`))
	}))
	t.Cleanup(server.Close)

	client := fireflies.NewClient("test-key")
	client.SetAPIURL(server.URL)
	return client
}

func TestImportFirefliesLinksAndDedupes(t *testing.T) {
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	_, err = st.UpsertClient(models.Client{ID: "c1", Name: "TechStore BA", Email: "maria@techstore.com"})
	require.NoError(t, err)

	database, err := dbpkg.Open(t.TempDir() + "/sync.db")
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	client := firefliesStub(t)
	strategy := match.NewSubstringStrategy()

	result, err := ImportFireflies(context.Background(), database, st, client, strategy, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 0, result.Updated)

	meeting, err := st.FindMeetingBySource(models.SourceFireflies, "tr-1")
	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Equal(t, "c1", meeting.ClientID)
	assert.Equal(t, "Se revisaron los KPIs.", meeting.Summary)
	assert.Contains(t, meeting.Transcript, "María: Hola")

	// Consultant annotations survive a re-import.
	meeting.Notes = "Cliente pidió descuento por volumen"
	_, err = st.UpsertMeeting(*meeting)
	require.NoError(t, err)

	// Re-running updates in place instead of duplicating.
	result, err = ImportFireflies(context.Background(), database, st, client, strategy, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Imported)

	meetings, err := st.ListMeetings()
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "Cliente pidió descuento por volumen", meetings[0].Notes)
	assert.Contains(t, meetings[0].Transcript, "María: Hola")

	state, err := dbpkg.GetSyncState(database, firefliesService)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, dbpkg.SyncIdle, state.Status)
}

func TestTranscriptToMeetingActionItemsFallback(t *testing.T) {
	tr := fireflies.TranscriptSummary{
		ID:          "tr-9",
		Title:       "Sin título",
		Date:        "2026-02-20",
		Time:        "10:00",
		ActionItems: "Subir stock; Revisar precios",
	}

	meeting := transcriptToMeeting(tr, "")
	assert.Equal(t, "Acciones: Subir stock; Revisar precios", meeting.Summary)
	assert.Equal(t, models.SourceFireflies, meeting.Provenance.Source)
}

func TestTranscriptRecordIncludesOrganizer(t *testing.T) {
	tr := fireflies.TranscriptSummary{
		Title:          "Weekly",
		OrganizerEmail: "ana@moda.mx",
		Participants:   []string{"consultor@example.com"},
	}

	record := transcriptRecord(tr)
	assert.Equal(t, []string{"consultor@example.com", "ana@moda.mx"}, record.Participants)
}
