// ABOUTME: Tests for client MCP tool handlers
// ABOUTME: Verifies create, update, search, and the aggregate client view
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultorml/models"
	"consultorml/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestUpsertClientCreates(t *testing.T) {
	h := NewClientHandlers(newTestStore(t))

	_, out, err := h.UpsertClient(context.Background(), nil, UpsertClientInput{
		Name:    "TechStore BA",
		Country: "Argentina",
		NickML:  "TECHSTORE_BA",
	})
	require.NoError(t, err)
	assert.Equal(t, "c100", out.ID)
	assert.Equal(t, "TechStore BA", out.Name)
	assert.Equal(t, "Onboarding", out.Phase)
	assert.Equal(t, models.PriorityMedium, out.Priority)
}

func TestUpsertClientRequiresName(t *testing.T) {
	h := NewClientHandlers(newTestStore(t))

	_, _, err := h.UpsertClient(context.Background(), nil, UpsertClientInput{})
	assert.Error(t, err)
}

func TestUpsertClientUpdatesInPlace(t *testing.T) {
	st := newTestStore(t)
	h := NewClientHandlers(st)

	_, created, err := h.UpsertClient(context.Background(), nil, UpsertClientInput{Name: "Moda Express"})
	require.NoError(t, err)

	_, updated, err := h.UpsertClient(context.Background(), nil, UpsertClientInput{
		ID:    created.ID,
		Phase: "Ads",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Moda Express", updated.Name)
	assert.Equal(t, "Ads", updated.Phase)

	clients, err := st.ListClients()
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestFindClientsFilters(t *testing.T) {
	h := NewClientHandlers(newTestStore(t))
	ctx := context.Background()

	_, _, err := h.UpsertClient(ctx, nil, UpsertClientInput{Name: "TechStore BA", NickML: "TECHSTORE_BA"})
	require.NoError(t, err)
	_, _, err = h.UpsertClient(ctx, nil, UpsertClientInput{Name: "HogarDeco", Email: "ventas@hogardeco.cl"})
	require.NoError(t, err)

	_, out, err := h.FindClients(ctx, nil, FindClientsInput{Query: "hogar"})
	require.NoError(t, err)
	require.Len(t, out.Clients, 1)
	assert.Equal(t, "HogarDeco", out.Clients[0].Name)

	_, out, err = h.FindClients(ctx, nil, FindClientsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Clients, 2)
}

func TestGetClientAggregatesRelatedEntities(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	clients := NewClientHandlers(st)
	meetings := NewMeetingHandlers(st)
	objectives := NewObjectiveHandlers(st)

	_, client, err := clients.UpsertClient(ctx, nil, UpsertClientInput{Name: "FitPro"})
	require.NoError(t, err)

	_, _, err = meetings.AddMeeting(ctx, nil, AddMeetingInput{
		ClientID: client.ID, Date: "2026-03-01", Type: "Estrategia",
	})
	require.NoError(t, err)

	_, objective, err := objectives.AddObjective(ctx, nil, AddObjectiveInput{
		ClientID: client.ID, Title: "Subir conversión", KPITarget: 5,
	})
	require.NoError(t, err)

	_, _, err = objectives.AddTask(ctx, nil, AddTaskInput{
		ClientID: client.ID, ObjectiveID: objective.ID, Desc: "Renovar fotos",
	})
	require.NoError(t, err)

	_, out, err := clients.GetClient(ctx, nil, GetClientInput{ClientID: client.ID})
	require.NoError(t, err)
	assert.Equal(t, "FitPro", out.Client.Name)
	assert.Len(t, out.Meetings, 1)
	assert.Len(t, out.Objectives, 1)
	assert.Len(t, out.Tasks, 1)
	assert.Equal(t, objective.ID, out.Tasks[0].ObjectiveID)
}

func TestGetClientNotFound(t *testing.T) {
	h := NewClientHandlers(newTestStore(t))

	_, _, err := h.GetClient(context.Background(), nil, GetClientInput{ClientID: "c999"})
	assert.Error(t, err)
}
