// ABOUTME: Spreadsheet analysis and KPI import MCP tool handlers
// ABOUTME: Implements import_kpis, analyze_client, and analysis history tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"consultorml/ai"
	"consultorml/kpi"
	"consultorml/models"
	"consultorml/store"
	"consultorml/tabular"
)

type AnalysisHandlers struct {
	store *store.Store
	ai    *ai.Client
}

func NewAnalysisHandlers(st *store.Store, aiClient *ai.Client) *AnalysisHandlers {
	return &AnalysisHandlers{store: st, ai: aiClient}
}

type ImportKPIsInput struct {
	ClientID string `json:"client_id" jsonschema:"Client whose KPIs to update"`
	File     string `json:"file" jsonschema:"Path to a CSV, TSV, or XLSX file with KPI columns"`
}

type ImportKPIsOutput struct {
	Rows    int         `json:"rows"`
	Columns int         `json:"columns"`
	Updated []string    `json:"updated_kpis"`
	KPIs    models.KPIs `json:"kpis"`
}

// ImportKPIs reads a tabular file, extracts recognizable KPI columns,
// and patches the client. Unrecognized columns are ignored.
func (h *AnalysisHandlers) ImportKPIs(_ context.Context, request *mcp.CallToolRequest, input ImportKPIsInput) (*mcp.CallToolResult, ImportKPIsOutput, error) {
	if input.ClientID == "" {
		return nil, ImportKPIsOutput{}, fmt.Errorf("client_id is required")
	}
	if input.File == "" {
		return nil, ImportKPIsOutput{}, fmt.Errorf("file is required")
	}

	dataset, err := tabular.ParseFile(input.File)
	if err != nil {
		return nil, ImportKPIsOutput{}, err
	}

	patch := kpi.Extract(dataset.Headers, dataset.Rows)
	if patch == nil {
		return nil, ImportKPIsOutput{}, fmt.Errorf("no se detectaron columnas de KPIs en %s", input.File)
	}

	client, err := h.store.PatchClientKPIs(input.ClientID, patch)
	if err != nil {
		return nil, ImportKPIsOutput{}, fmt.Errorf("failed to update KPIs: %w", err)
	}

	if _, err := h.store.AppendAnalysis(input.ClientID, models.AnalysisEntry{
		Source:  input.File,
		Rows:    len(dataset.Rows),
		Columns: len(dataset.Headers),
		Headers: dataset.Headers,
	}); err != nil {
		return nil, ImportKPIsOutput{}, fmt.Errorf("failed to record analysis: %w", err)
	}

	return nil, ImportKPIsOutput{
		Rows:    len(dataset.Rows),
		Columns: len(dataset.Headers),
		Updated: patchedKeys(patch),
		KPIs:    client.KPIs,
	}, nil
}

func patchedKeys(patch *kpi.Patch) []string {
	var keys []string
	if patch.SalesAmount != nil {
		keys = append(keys, "ventas30d")
	}
	if patch.ConversionRate != nil {
		keys = append(keys, "conversion")
	}
	if patch.ACOS != nil {
		keys = append(keys, "acos")
	}
	if patch.OpenTickets != nil {
		keys = append(keys, "tickets")
	}
	return keys
}

type AnalyzeClientInput struct {
	ClientID string `json:"client_id" jsonschema:"Client to generate an optimization analysis for"`
}

type AnalyzeClientOutput struct {
	Analysis string `json:"analysis"`
}

// AnalyzeClient asks the AI for an optimization analysis based on the
// client's current KPIs. Requires a configured Perplexity API key.
func (h *AnalysisHandlers) AnalyzeClient(ctx context.Context, request *mcp.CallToolRequest, input AnalyzeClientInput) (*mcp.CallToolResult, AnalyzeClientOutput, error) {
	if input.ClientID == "" {
		return nil, AnalyzeClientOutput{}, fmt.Errorf("client_id is required")
	}

	client, err := h.store.GetClient(input.ClientID)
	if err != nil {
		return nil, AnalyzeClientOutput{}, fmt.Errorf("client not found: %s", input.ClientID)
	}

	analysis, err := h.ai.GenerateOptimizationAnalysis(ctx, client)
	if err != nil {
		return nil, AnalyzeClientOutput{}, err
	}

	return nil, AnalyzeClientOutput{Analysis: analysis}, nil
}

type ListAnalysesInput struct {
	ClientID string `json:"client_id" jsonschema:"Client whose analysis history to list"`
}

type AnalysisEntryOutput struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Source    string   `json:"source"`
	Rows      int      `json:"rows"`
	Columns   int      `json:"columns"`
	Headers   []string `json:"headers"`
}

type ListAnalysesOutput struct {
	Entries []AnalysisEntryOutput `json:"entries"`
}

func (h *AnalysisHandlers) ListAnalyses(_ context.Context, request *mcp.CallToolRequest, input ListAnalysesInput) (*mcp.CallToolResult, ListAnalysesOutput, error) {
	if input.ClientID == "" {
		return nil, ListAnalysesOutput{}, fmt.Errorf("client_id is required")
	}

	entries, err := h.store.ListAnalyses(input.ClientID)
	if err != nil {
		return nil, ListAnalysesOutput{}, fmt.Errorf("failed to list analyses: %w", err)
	}

	out := ListAnalysesOutput{Entries: make([]AnalysisEntryOutput, len(entries))}
	for i, entry := range entries {
		out.Entries[i] = AnalysisEntryOutput{
			ID:        entry.ID,
			Timestamp: entry.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			Source:    entry.Source,
			Rows:      entry.Rows,
			Columns:   entry.Columns,
			Headers:   entry.Headers,
		}
	}
	return nil, out, nil
}
