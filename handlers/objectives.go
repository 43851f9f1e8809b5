// ABOUTME: Objective and task MCP tool handlers
// ABOUTME: Implements add_objective, add_task, toggle_task, and list tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"consultorml/models"
	"consultorml/store"
)

type ObjectiveHandlers struct {
	store *store.Store
}

func NewObjectiveHandlers(st *store.Store) *ObjectiveHandlers {
	return &ObjectiveHandlers{store: st}
}

type AddObjectiveInput struct {
	ClientID   string  `json:"client_id" jsonschema:"Client ID the objective belongs to"`
	Title      string  `json:"title" jsonschema:"Objective title"`
	Desc       string  `json:"desc,omitempty" jsonschema:"Objective description"`
	KPIInitial float64 `json:"kpi_initial,omitempty" jsonschema:"Starting KPI value"`
	KPITarget  float64 `json:"kpi_target,omitempty" jsonschema:"Target KPI value"`
	Deadline   string  `json:"deadline,omitempty" jsonschema:"Deadline (YYYY-MM-DD)"`
}

type ObjectiveOutput struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	Title      string  `json:"title"`
	Desc       string  `json:"desc,omitempty"`
	KPIInitial float64 `json:"kpi_initial"`
	KPITarget  float64 `json:"kpi_target"`
	Deadline   string  `json:"deadline,omitempty"`
	Status     string  `json:"status"`
}

func (h *ObjectiveHandlers) AddObjective(_ context.Context, request *mcp.CallToolRequest, input AddObjectiveInput) (*mcp.CallToolResult, ObjectiveOutput, error) {
	if input.ClientID == "" {
		return nil, ObjectiveOutput{}, fmt.Errorf("client_id is required")
	}
	if input.Title == "" {
		return nil, ObjectiveOutput{}, fmt.Errorf("title is required")
	}
	if _, err := h.store.GetClient(input.ClientID); err != nil {
		return nil, ObjectiveOutput{}, fmt.Errorf("client not found: %s", input.ClientID)
	}

	objective := models.Objective{
		ID:         h.store.NextID("o"),
		ClientID:   input.ClientID,
		Title:      input.Title,
		Desc:       input.Desc,
		KPIInitial: input.KPIInitial,
		KPITarget:  input.KPITarget,
		Deadline:   input.Deadline,
		Status:     models.ObjectivePending,
	}

	saved, err := h.store.UpsertObjective(objective)
	if err != nil {
		return nil, ObjectiveOutput{}, fmt.Errorf("failed to save objective: %w", err)
	}

	return nil, objectiveToOutput(saved), nil
}

type AddTaskInput struct {
	ClientID    string `json:"client_id" jsonschema:"Client ID the task belongs to"`
	ObjectiveID string `json:"objective_id,omitempty" jsonschema:"Objective this task contributes to"`
	Type        string `json:"type,omitempty" jsonschema:"Task type (SEO Listings, Ads, Pricing, Logística, Atención al cliente, Otro)"`
	Desc        string `json:"desc" jsonschema:"Task description"`
	Responsible string `json:"responsible,omitempty" jsonschema:"Who does it (Consultor, Equipo, Cliente)"`
	Deadline    string `json:"deadline,omitempty" jsonschema:"Deadline (YYYY-MM-DD)"`
}

type TaskOutput struct {
	ID          string `json:"id"`
	ObjectiveID string `json:"objective_id,omitempty"`
	ClientID    string `json:"client_id"`
	Type        string `json:"type,omitempty"`
	Desc        string `json:"desc"`
	Responsible string `json:"responsible,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Status      string `json:"status"`
}

func (h *ObjectiveHandlers) AddTask(_ context.Context, request *mcp.CallToolRequest, input AddTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	if input.ClientID == "" {
		return nil, TaskOutput{}, fmt.Errorf("client_id is required")
	}
	if input.Desc == "" {
		return nil, TaskOutput{}, fmt.Errorf("desc is required")
	}
	if _, err := h.store.GetClient(input.ClientID); err != nil {
		return nil, TaskOutput{}, fmt.Errorf("client not found: %s", input.ClientID)
	}

	task := models.Task{
		ID:          h.store.NextID("t"),
		ObjectiveID: input.ObjectiveID,
		ClientID:    input.ClientID,
		Type:        input.Type,
		Desc:        input.Desc,
		Responsible: input.Responsible,
		Deadline:    input.Deadline,
		Status:      models.TaskPending,
	}

	saved, err := h.store.UpsertTask(task)
	if err != nil {
		return nil, TaskOutput{}, fmt.Errorf("failed to save task: %w", err)
	}

	return nil, taskToOutput(saved), nil
}

type ToggleTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"Task ID to advance to its next state"`
}

func (h *ObjectiveHandlers) ToggleTask(_ context.Context, request *mcp.CallToolRequest, input ToggleTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	if input.TaskID == "" {
		return nil, TaskOutput{}, fmt.Errorf("task_id is required")
	}

	task, err := h.store.ToggleTaskStatus(input.TaskID)
	if err != nil {
		return nil, TaskOutput{}, fmt.Errorf("failed to toggle task: %w", err)
	}

	return nil, taskToOutput(*task), nil
}

type ListTasksInput struct {
	ClientID string `json:"client_id,omitempty" jsonschema:"Filter by client ID; omit for all tasks"`
}

type ListTasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
}

func (h *ObjectiveHandlers) ListTasks(_ context.Context, request *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, ListTasksOutput, error) {
	var (
		tasks []models.Task
		err   error
	)
	if input.ClientID != "" {
		tasks, err = h.store.ListTasksByClient(input.ClientID)
	} else {
		tasks, err = h.store.ListTasks()
	}
	if err != nil {
		return nil, ListTasksOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := ListTasksOutput{Tasks: make([]TaskOutput, len(tasks))}
	for i, task := range tasks {
		out.Tasks[i] = taskToOutput(task)
	}
	return nil, out, nil
}

func objectiveToOutput(objective models.Objective) ObjectiveOutput {
	return ObjectiveOutput{
		ID:         objective.ID,
		ClientID:   objective.ClientID,
		Title:      objective.Title,
		Desc:       objective.Desc,
		KPIInitial: objective.KPIInitial,
		KPITarget:  objective.KPITarget,
		Deadline:   objective.Deadline,
		Status:     objective.Status,
	}
}

func taskToOutput(task models.Task) TaskOutput {
	return TaskOutput{
		ID:          task.ID,
		ObjectiveID: task.ObjectiveID,
		ClientID:    task.ClientID,
		Type:        task.Type,
		Desc:        task.Desc,
		Responsible: task.Responsible,
		Deadline:    task.Deadline,
		Status:      task.Status,
	}
}
