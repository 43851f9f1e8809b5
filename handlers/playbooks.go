// ABOUTME: Playbook MCP tool handlers
// ABOUTME: Implements list_playbooks and apply_playbook tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"consultorml/playbook"
	"consultorml/store"
)

type PlaybookHandlers struct {
	store *store.Store
}

func NewPlaybookHandlers(st *store.Store) *PlaybookHandlers {
	return &PlaybookHandlers{store: st}
}

type ListPlaybooksInput struct{}

type PlaybookOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	TaskCount int    `json:"task_count"`
}

type ListPlaybooksOutput struct {
	Playbooks []PlaybookOutput `json:"playbooks"`
}

func (h *PlaybookHandlers) ListPlaybooks(_ context.Context, request *mcp.CallToolRequest, input ListPlaybooksInput) (*mcp.CallToolResult, ListPlaybooksOutput, error) {
	out := ListPlaybooksOutput{}
	for _, tpl := range playbook.Catalog {
		out.Playbooks = append(out.Playbooks, PlaybookOutput{
			ID:        tpl.ID,
			Name:      tpl.Name,
			Type:      tpl.Type,
			TaskCount: len(tpl.Tasks),
		})
	}
	return nil, out, nil
}

type ApplyPlaybookInput struct {
	PlaybookID string `json:"playbook_id" jsonschema:"Playbook ID (pb1..pb4)"`
	ClientID   string `json:"client_id" jsonschema:"Client to apply the playbook to"`
}

type ApplyPlaybookOutput struct {
	Objective ObjectiveOutput `json:"objective"`
	Tasks     []TaskOutput    `json:"tasks"`
}

func (h *PlaybookHandlers) ApplyPlaybook(_ context.Context, request *mcp.CallToolRequest, input ApplyPlaybookInput) (*mcp.CallToolResult, ApplyPlaybookOutput, error) {
	if input.PlaybookID == "" {
		return nil, ApplyPlaybookOutput{}, fmt.Errorf("playbook_id is required")
	}
	if input.ClientID == "" {
		return nil, ApplyPlaybookOutput{}, fmt.Errorf("client_id is required")
	}

	tpl := playbook.Find(input.PlaybookID)
	if tpl == nil {
		return nil, ApplyPlaybookOutput{}, fmt.Errorf("playbook not found: %s", input.PlaybookID)
	}
	if _, err := h.store.GetClient(input.ClientID); err != nil {
		return nil, ApplyPlaybookOutput{}, fmt.Errorf("client not found: %s", input.ClientID)
	}

	objective, tasks := playbook.Apply(tpl, input.ClientID, h.store, time.Now())
	if err := h.store.InsertPlaybookResult(objective, tasks); err != nil {
		return nil, ApplyPlaybookOutput{}, fmt.Errorf("failed to apply playbook: %w", err)
	}

	out := ApplyPlaybookOutput{Objective: objectiveToOutput(objective)}
	for _, task := range tasks {
		out.Tasks = append(out.Tasks, taskToOutput(task))
	}
	return nil, out, nil
}
