// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"consultorml/ai"
	"consultorml/config"
	"consultorml/handlers"
	"consultorml/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(cfg *config.Config, st *store.Store) error {
	log.Println("Starting ConsultorML MCP Server...")

	clientHandlers := handlers.NewClientHandlers(st)
	meetingHandlers := handlers.NewMeetingHandlers(st)
	objectiveHandlers := handlers.NewObjectiveHandlers(st)
	playbookHandlers := handlers.NewPlaybookHandlers(st)
	analysisHandlers := handlers.NewAnalysisHandlers(st, ai.NewClient(cfg.PerplexityAPIKey))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "consultorml",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_client",
		Description: "Create a new client or update an existing one",
	}, clientHandlers.UpsertClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_clients",
		Description: "Search clients by name, brand, nickname, or email",
	}, clientHandlers.FindClients)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_client",
		Description: "Get one client with meetings, objectives, and tasks",
	}, clientHandlers.GetClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_meeting",
		Description: "Register a meeting for a client",
	}, meetingHandlers.AddMeeting)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_meetings",
		Description: "List meetings, optionally filtered by client",
	}, meetingHandlers.ListMeetings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_objective",
		Description: "Create a KPI objective for a client",
	}, objectiveHandlers.AddObjective)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Create a task for a client, optionally linked to an objective",
	}, objectiveHandlers.AddTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_task",
		Description: "Advance a task to its next state (Pendiente → En progreso → Cumplida)",
	}, objectiveHandlers.ToggleTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks, optionally filtered by client",
	}, objectiveHandlers.ListTasks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_playbooks",
		Description: "List the available consulting playbooks",
	}, playbookHandlers.ListPlaybooks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply_playbook",
		Description: "Expand a playbook into an objective with its tasks for a client",
	}, playbookHandlers.ApplyPlaybook)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_kpis",
		Description: "Import KPIs for a client from a CSV, TSV, or XLSX file",
	}, analysisHandlers.ImportKPIs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_client",
		Description: "Generate an AI optimization analysis from the client's KPIs",
	}, analysisHandlers.AnalyzeClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_analyses",
		Description: "List a client's spreadsheet analysis history",
	}, analysisHandlers.ListAnalyses)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
