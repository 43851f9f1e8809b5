// ABOUTME: Tests for playbook MCP tool handlers
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultorml/models"
)

func TestListPlaybooks(t *testing.T) {
	h := NewPlaybookHandlers(newTestStore(t))

	_, out, err := h.ListPlaybooks(context.Background(), nil, ListPlaybooksInput{})
	require.NoError(t, err)
	require.Len(t, out.Playbooks, 4)
	assert.Equal(t, "pb1", out.Playbooks[0].ID)
	assert.Equal(t, "Onboarding Full ML", out.Playbooks[0].Name)
	assert.Greater(t, out.Playbooks[0].TaskCount, 0)
}

func TestApplyPlaybookCreatesObjectiveAndTasks(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	clients := NewClientHandlers(st)
	_, client, err := clients.UpsertClient(ctx, nil, UpsertClientInput{Name: "TechStore BA"})
	require.NoError(t, err)

	h := NewPlaybookHandlers(st)
	_, out, err := h.ApplyPlaybook(ctx, nil, ApplyPlaybookInput{
		PlaybookID: "pb1",
		ClientID:   client.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, client.ID, out.Objective.ClientID)
	assert.Equal(t, "Onboarding Full ML", out.Objective.Title)
	assert.NotEmpty(t, out.Tasks)
	for _, task := range out.Tasks {
		assert.Equal(t, out.Objective.ID, task.ObjectiveID)
		assert.Equal(t, models.TaskPending, task.Status)
	}

	objectives, err := st.ListObjectivesByClient(client.ID)
	require.NoError(t, err)
	assert.Len(t, objectives, 1)

	tasks, err := st.ListTasksByClient(client.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, len(out.Tasks))
}

func TestApplyPlaybookUnknownID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	clients := NewClientHandlers(st)
	_, client, err := clients.UpsertClient(ctx, nil, UpsertClientInput{Name: "Moda"})
	require.NoError(t, err)

	h := NewPlaybookHandlers(st)
	_, _, err = h.ApplyPlaybook(ctx, nil, ApplyPlaybookInput{PlaybookID: "pb99", ClientID: client.ID})
	assert.Error(t, err)
}
