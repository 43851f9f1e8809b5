// ABOUTME: Client MCP tool handlers
// ABOUTME: Implements upsert_client, find_clients, and get_client tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"consultorml/models"
	"consultorml/store"
)

type ClientHandlers struct {
	store *store.Store
}

func NewClientHandlers(st *store.Store) *ClientHandlers {
	return &ClientHandlers{store: st}
}

type UpsertClientInput struct {
	ID           string `json:"id,omitempty" jsonschema:"Client ID to update; omit to create a new client"`
	Name         string `json:"name" jsonschema:"Business name (required for new clients)"`
	Brand        string `json:"brand,omitempty" jsonschema:"Brand as shown on MercadoLibre"`
	Country      string `json:"country,omitempty" jsonschema:"Country (Argentina, México, ...)"`
	Contact      string `json:"contact,omitempty" jsonschema:"Main contact person"`
	Email        string `json:"email,omitempty" jsonschema:"Contact email"`
	NickML       string `json:"nick_ml,omitempty" jsonschema:"MercadoLibre seller nickname"`
	LevelML      string `json:"level_ml,omitempty" jsonschema:"MercadoLibre reputation level"`
	Category     string `json:"category,omitempty" jsonschema:"Main product category"`
	BusinessType string `json:"business_type,omitempty" jsonschema:"Business type (Fabricante, Distribuidor, ...)"`
	Phase        string `json:"phase,omitempty" jsonschema:"Consulting phase (Onboarding, Optimización, Ads, Expansión, Mantenimiento)"`
	Priority     string `json:"priority,omitempty" jsonschema:"Priority (Alta, Media, Baja)"`
}

type ClientOutput struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Brand        string      `json:"brand,omitempty"`
	Country      string      `json:"country,omitempty"`
	Contact      string      `json:"contact,omitempty"`
	Email        string      `json:"email,omitempty"`
	NickML       string      `json:"nick_ml,omitempty"`
	LevelML      string      `json:"level_ml,omitempty"`
	Category     string      `json:"category,omitempty"`
	BusinessType string      `json:"business_type,omitempty"`
	Phase        string      `json:"phase,omitempty"`
	Priority     string      `json:"priority,omitempty"`
	KPIs         models.KPIs `json:"kpis"`
}

func (h *ClientHandlers) UpsertClient(_ context.Context, request *mcp.CallToolRequest, input UpsertClientInput) (*mcp.CallToolResult, ClientOutput, error) {
	var client models.Client

	if input.ID != "" {
		existing, err := h.store.GetClient(input.ID)
		if err != nil {
			return nil, ClientOutput{}, fmt.Errorf("client not found: %s", input.ID)
		}
		client = *existing
	} else {
		if input.Name == "" {
			return nil, ClientOutput{}, fmt.Errorf("name is required")
		}
		client.ID = h.store.NextID("c")
		client.Phase = models.Phases[0]
		client.Priority = models.PriorityMedium
	}

	applyClientInput(&client, input)

	saved, err := h.store.UpsertClient(client)
	if err != nil {
		return nil, ClientOutput{}, fmt.Errorf("failed to save client: %w", err)
	}

	return nil, clientToOutput(saved), nil
}

func applyClientInput(client *models.Client, input UpsertClientInput) {
	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Brand != "" {
		client.Brand = input.Brand
	}
	if input.Country != "" {
		client.Country = input.Country
	}
	if input.Contact != "" {
		client.Contact = input.Contact
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.NickML != "" {
		client.NickML = input.NickML
	}
	if input.LevelML != "" {
		client.LevelML = input.LevelML
	}
	if input.Category != "" {
		client.Category = input.Category
	}
	if input.BusinessType != "" {
		client.BusinessType = input.BusinessType
	}
	if input.Phase != "" {
		client.Phase = input.Phase
	}
	if input.Priority != "" {
		client.Priority = input.Priority
	}
}

type FindClientsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches name, brand, nickname, email)"`
}

type FindClientsOutput struct {
	Clients []ClientOutput `json:"clients"`
}

func (h *ClientHandlers) FindClients(_ context.Context, request *mcp.CallToolRequest, input FindClientsInput) (*mcp.CallToolResult, FindClientsOutput, error) {
	clients, err := h.store.ListClients()
	if err != nil {
		return nil, FindClientsOutput{}, fmt.Errorf("failed to list clients: %w", err)
	}

	query := strings.ToLower(input.Query)
	result := make([]ClientOutput, 0, len(clients))
	for _, client := range clients {
		if query != "" && !clientMatchesQuery(client, query) {
			continue
		}
		result = append(result, clientToOutput(client))
	}

	return nil, FindClientsOutput{Clients: result}, nil
}

func clientMatchesQuery(client models.Client, query string) bool {
	for _, field := range []string{client.Name, client.Brand, client.NickML, client.Email} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

type GetClientInput struct {
	ClientID string `json:"client_id" jsonschema:"Client ID (e.g. c1)"`
}

type GetClientOutput struct {
	Client     ClientOutput      `json:"client"`
	Meetings   []MeetingOutput   `json:"meetings"`
	Objectives []ObjectiveOutput `json:"objectives"`
	Tasks      []TaskOutput      `json:"tasks"`
}

// GetClient returns the full dashboard view of one client.
func (h *ClientHandlers) GetClient(_ context.Context, request *mcp.CallToolRequest, input GetClientInput) (*mcp.CallToolResult, GetClientOutput, error) {
	if input.ClientID == "" {
		return nil, GetClientOutput{}, fmt.Errorf("client_id is required")
	}

	client, err := h.store.GetClient(input.ClientID)
	if err != nil {
		return nil, GetClientOutput{}, fmt.Errorf("client not found: %s", input.ClientID)
	}

	meetings, err := h.store.ListMeetingsByClient(input.ClientID)
	if err != nil {
		return nil, GetClientOutput{}, fmt.Errorf("failed to list meetings: %w", err)
	}
	objectives, err := h.store.ListObjectivesByClient(input.ClientID)
	if err != nil {
		return nil, GetClientOutput{}, fmt.Errorf("failed to list objectives: %w", err)
	}
	tasks, err := h.store.ListTasksByClient(input.ClientID)
	if err != nil {
		return nil, GetClientOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := GetClientOutput{Client: clientToOutput(*client)}
	for _, m := range meetings {
		out.Meetings = append(out.Meetings, meetingToOutput(m))
	}
	for _, o := range objectives {
		out.Objectives = append(out.Objectives, objectiveToOutput(o))
	}
	for _, task := range tasks {
		out.Tasks = append(out.Tasks, taskToOutput(task))
	}

	return nil, out, nil
}

func clientToOutput(client models.Client) ClientOutput {
	return ClientOutput{
		ID:           client.ID,
		Name:         client.Name,
		Brand:        client.Brand,
		Country:      client.Country,
		Contact:      client.Contact,
		Email:        client.Email,
		NickML:       client.NickML,
		LevelML:      client.LevelML,
		Category:     client.Category,
		BusinessType: client.BusinessType,
		Phase:        client.Phase,
		Priority:     client.Priority,
		KPIs:         client.KPIs,
	}
}
