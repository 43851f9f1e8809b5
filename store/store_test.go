package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultorml/kpi"
	"consultorml/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNextIDMonotonic(t *testing.T) {
	s := newTestStore(t)

	first := s.NextID("c")
	second := s.NextID("c")

	assert.Equal(t, "c100", first)
	assert.Equal(t, "c101", second)
	assert.NotEqual(t, first, second)
}

func TestNextIDSharedAcrossPrefixes(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "c100", s.NextID("c"))
	assert.Equal(t, "m101", s.NextID("m"))
	assert.Equal(t, "o102", s.NextID("o"))
}

func TestUpsertClientAppendsAndReplaces(t *testing.T) {
	s := newTestStore(t)

	created, err := s.UpsertClient(models.Client{Name: "TechStore BA"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	clients, err := s.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)

	// Replace in place: same id, length unchanged.
	created.Phase = "Ads"
	_, err = s.UpsertClient(created)
	require.NoError(t, err)

	clients, err = s.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ads", clients[0].Phase)

	// No id appends.
	_, err = s.UpsertClient(models.Client{Name: "Otro"})
	require.NoError(t, err)
	clients, err = s.ListClients()
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestUpsertPreservesCollectionPosition(t *testing.T) {
	s := newTestStore(t)

	a, err := s.UpsertClient(models.Client{Name: "A"})
	require.NoError(t, err)
	_, err = s.UpsertClient(models.Client{Name: "B"})
	require.NoError(t, err)

	a.Name = "A2"
	_, err = s.UpsertClient(a)
	require.NoError(t, err)

	clients, err := s.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "A2", clients[0].Name)
	assert.Equal(t, "B", clients[1].Name)
}

func TestCounterSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data")

	s, err := Open(path)
	require.NoError(t, err)

	created, err := s.UpsertClient(models.Client{Name: "Persistente"})
	require.NoError(t, err)
	assert.Equal(t, "c100", created.ID)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	// Must not reissue c100.
	assert.Equal(t, "m101", reopened.NextID("m"))
}

func TestGetClientNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetClient("c999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMeetingsByClientSortedByDateDesc(t *testing.T) {
	s := newTestStore(t)

	for _, m := range []models.Meeting{
		{ClientID: "c1", Date: "2026-01-03", Time: "09:00"},
		{ClientID: "c1", Date: "2026-02-14", Time: "10:00"},
		{ClientID: "c2", Date: "2026-03-01"},
		{ClientID: "c1", Date: "2026-02-14", Time: "16:00"},
	} {
		_, err := s.UpsertMeeting(m)
		require.NoError(t, err)
	}

	meetings, err := s.ListMeetingsByClient("c1")
	require.NoError(t, err)
	require.Len(t, meetings, 3)
	assert.Equal(t, "16:00", meetings[0].Time)
	assert.Equal(t, "10:00", meetings[1].Time)
	assert.Equal(t, "2026-01-03", meetings[2].Date)
}

func TestFindMeetingBySource(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertMeeting(models.Meeting{
		ClientID:   "c1",
		Date:       "2026-02-14",
		Provenance: &models.Provenance{Source: models.SourceGoogleCalendar, ExternalID: "evt-42"},
	})
	require.NoError(t, err)

	found, err := s.FindMeetingBySource(models.SourceGoogleCalendar, "evt-42")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.ClientID)

	missing, err := s.FindMeetingBySource(models.SourceFireflies, "evt-42")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatchClientKPIsPartial(t *testing.T) {
	s := newTestStore(t)

	created, err := s.UpsertClient(models.Client{
		Name: "TechStore BA",
		KPIs: models.KPIs{Ventas30d: 100, Conversion: 5, ACOS: 20, Tickets: 2},
	})
	require.NoError(t, err)

	sales := 3000.0
	conv := 6.0
	patched, err := s.PatchClientKPIs(created.ID, &kpi.Patch{SalesAmount: &sales, ConversionRate: &conv})
	require.NoError(t, err)

	assert.Equal(t, 3000.0, patched.KPIs.Ventas30d)
	assert.Equal(t, 6.0, patched.KPIs.Conversion)
	// Absent keys stay untouched, never zeroed.
	assert.Equal(t, 20.0, patched.KPIs.ACOS)
	assert.Equal(t, 2.0, patched.KPIs.Tickets)
}

func TestInsertPlaybookResultAtomic(t *testing.T) {
	s := newTestStore(t)

	objective := models.Objective{ID: s.NextID("o"), ClientID: "c1", Title: "PB", Status: models.ObjectiveInProgress}
	tasks := []models.Task{
		{ID: s.NextID("t"), ObjectiveID: objective.ID, ClientID: "c1", Desc: "uno", Status: models.TaskPending},
		{ID: s.NextID("t"), ObjectiveID: objective.ID, ClientID: "c1", Desc: "dos", Status: models.TaskPending},
	}

	require.NoError(t, s.InsertPlaybookResult(objective, tasks))

	objectives, err := s.ListObjectivesByClient("c1")
	require.NoError(t, err)
	assert.Len(t, objectives, 1)

	stored, err := s.ListTasksByClient("c1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, task := range stored {
		assert.Equal(t, objective.ID, task.ObjectiveID)
	}
}

func TestToggleTaskStatus(t *testing.T) {
	s := newTestStore(t)

	task, err := s.UpsertTask(models.Task{ClientID: "c1", Desc: "x", Status: models.TaskPending})
	require.NoError(t, err)

	toggled, err := s.ToggleTaskStatus(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, toggled.Status)

	toggled, err = s.ToggleTaskStatus(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskDone, toggled.Status)

	_, err = s.ToggleTaskStatus("t999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalysisHistory(t *testing.T) {
	s := newTestStore(t)

	entry, err := s.AppendAnalysis("c1", models.AnalysisEntry{
		Source:  "ventas_enero.xlsx",
		Rows:    120,
		Columns: 6,
		Headers: []string{"SKU", "Ventas"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	entries, err := s.ListAnalyses("c1")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, s.RemoveAnalysis("c1", entry.ID))
	entries, err = s.ListAnalyses("c1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, s.RemoveAnalysis("c1", "nope"), ErrNotFound)
}

func TestSeedSampleData(t *testing.T) {
	s := newTestStore(t)

	seeded, err := s.SeedSampleData()
	require.NoError(t, err)
	assert.True(t, seeded)

	clients, err := s.ListClients()
	require.NoError(t, err)
	assert.Len(t, clients, 4)

	// Second call is a no-op.
	seeded, err = s.SeedSampleData()
	require.NoError(t, err)
	assert.False(t, seeded)

	// Fresh ids start above the seeded ones.
	assert.Equal(t, "c100", s.NextID("c"))
}

func TestLoadBareArraySnapshot(t *testing.T) {
	var clients []models.Client
	raw := []byte(`[{"id":"c1","name":"TechStore BA","kpis":{"ventas30d":100}}]`)
	require.NoError(t, decodeSnapshot(raw, &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "TechStore BA", clients[0].Name)
	assert.Equal(t, 100.0, clients[0].KPIs.Ventas30d)
}
