// ABOUTME: Tests for portfolio dashboard statistics
package viz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultorml/models"
	"consultorml/store"
)

func TestGenerateDashboardStats(t *testing.T) {
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	_, err = st.UpsertClient(models.Client{ID: "c1", Name: "TechStore BA", Phase: "Onboarding"})
	require.NoError(t, err)
	_, err = st.UpsertClient(models.Client{ID: "c2", Name: "Moda Express", Phase: "Ads"})
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err = st.UpsertMeeting(models.Meeting{ID: "m1", ClientID: "c1", Date: "2026-03-12", Time: "10:00", Summary: "Seguimiento semanal"})
	require.NoError(t, err)
	_, err = st.UpsertMeeting(models.Meeting{ID: "m2", ClientID: "c2", Date: "2026-04-01"})
	require.NoError(t, err)

	_, err = st.UpsertTask(models.Task{ID: "t1", ClientID: "c1", Desc: "Renovar fotos", Status: models.TaskPending, Deadline: "2026-03-01"})
	require.NoError(t, err)
	_, err = st.UpsertTask(models.Task{ID: "t2", ClientID: "c2", Desc: "Campaña Ads", Status: models.TaskBlocked})
	require.NoError(t, err)
	_, err = st.UpsertTask(models.Task{ID: "t3", ClientID: "c2", Desc: "Cerrada", Status: models.TaskDone})
	require.NoError(t, err)

	stats, err := GenerateDashboardStats(st, now)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalClients)
	assert.Equal(t, 1, stats.ClientsByPhase["Onboarding"])
	assert.Equal(t, 1, stats.ClientsByPhase["Ads"])
	assert.Equal(t, 1, stats.PendingTasks)
	assert.Equal(t, 1, stats.BlockedTasks)

	require.Len(t, stats.OverdueTasks, 1)
	assert.Equal(t, "TechStore BA", stats.OverdueTasks[0].ClientName)

	require.Len(t, stats.UpcomingMeetings, 1)
	assert.Equal(t, "2026-03-12", stats.UpcomingMeetings[0].Date)
}

func TestRenderDashboard(t *testing.T) {
	stats := &DashboardStats{
		ClientsByPhase: map[string]int{"Onboarding": 2, "Ads": 1},
		TotalClients:   3,
		PendingTasks:   4,
	}

	out := RenderDashboard(stats)
	assert.Contains(t, out, "CONSULTORML DASHBOARD")
	assert.Contains(t, out, "Onboarding")
	assert.Contains(t, out, "3 clientes")
	assert.Contains(t, out, "4 tareas abiertas")
}
