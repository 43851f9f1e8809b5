// ABOUTME: Entry point for the consulting dashboard CLI and MCP server
// ABOUTME: Routes to crm, sync, sheets, ai, mcp, tui, and viz commands
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"consultorml/cli"
	"consultorml/config"
	"consultorml/db"
	"consultorml/store"
)

const version = "0.1.0"

func main() {
	// .env is optional; environment wins over the config file either way.
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	storePath := flag.String("store-path", "", "Store path (default: ~/.local/share/consultorml/store)")
	seed := flag.Bool("seed", false, "Load sample data into an empty store and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("consultorml version %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}

	args := flag.Args()
	if len(args) == 0 && !*seed {
		printUsage()
		os.Exit(0)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() { _ = st.Close() }()

	if *seed {
		if err := cli.SeedCommand(st, nil); err != nil {
			log.Fatalf("Error: %v", err)
		}
		if len(args) == 0 {
			return
		}
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(cfg, st); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		var err error
		switch crmCommand {
		case "add-client":
			err = cli.AddClientCommand(st, crmArgs)
		case "list-clients":
			err = cli.ListClientsCommand(st, crmArgs)
		case "show-client":
			err = cli.ShowClientCommand(st, crmArgs)
		case "update-client":
			err = cli.UpdateClientCommand(st, crmArgs)
		case "add-meeting":
			err = cli.AddMeetingCommand(st, crmArgs)
		case "list-meetings":
			err = cli.ListMeetingsCommand(st, crmArgs)
		case "add-objective":
			err = cli.AddObjectiveCommand(st, crmArgs)
		case "list-objectives":
			err = cli.ListObjectivesCommand(st, crmArgs)
		case "add-task":
			err = cli.AddTaskCommand(st, crmArgs)
		case "list-tasks":
			err = cli.ListTasksCommand(st, crmArgs)
		case "toggle-task":
			err = cli.ToggleTaskCommand(st, crmArgs)
		case "list-playbooks":
			err = cli.ListPlaybooksCommand(st, crmArgs)
		case "apply-playbook":
			err = cli.ApplyPlaybookCommand(st, crmArgs)
		case "history":
			err = cli.HistoryCommand(st, crmArgs)
		case "seed":
			err = cli.SeedCommand(st, crmArgs)
		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "sync":
		if len(commandArgs) == 0 {
			fmt.Println("Error: sync requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		database, err := db.Open(cfg.SyncDBPath)
		if err != nil {
			log.Fatalf("Failed to open sync database: %v", err)
		}
		defer func() { _ = database.Close() }()

		syncCommand := commandArgs[0]
		syncArgs := commandArgs[1:]

		switch syncCommand {
		case "init":
			err = cli.SyncInitCommand(cfg, syncArgs)
		case "google":
			err = cli.SyncGoogleCommand(cfg, database, st, syncArgs)
		case "fireflies":
			err = cli.SyncFirefliesCommand(cfg, database, st, syncArgs)
		case "status":
			err = cli.SyncStatusCommand(database, syncArgs)
		default:
			fmt.Printf("Unknown sync command: %s\n\n", syncCommand)
			printUsage()
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "sheets":
		if len(commandArgs) == 0 || commandArgs[0] != "pull" {
			fmt.Println("Error: sheets requires the 'pull' subcommand")
			printUsage()
			os.Exit(1)
		}
		if err := cli.SheetsPullCommand(cfg, st, commandArgs[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "analyze":
		if err := cli.AnalyzeFileCommand(cfg, st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "ai":
		if len(commandArgs) == 0 {
			fmt.Println("Error: ai requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		aiCommand := commandArgs[0]
		aiArgs := commandArgs[1:]

		var err error
		switch aiCommand {
		case "summary":
			err = cli.AISummaryCommand(cfg, st, aiArgs)
		case "analysis":
			err = cli.AIAnalysisCommand(cfg, st, aiArgs)
		case "tasks":
			err = cli.AITasksCommand(cfg, st, aiArgs)
		default:
			fmt.Printf("Unknown ai command: %s\n\n", aiCommand)
			printUsage()
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "config":
		if len(commandArgs) == 0 {
			fmt.Println("Error: config requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		var err error
		switch commandArgs[0] {
		case "show":
			err = cli.ConfigShowCommand(cfg, commandArgs[1:])
		case "set":
			err = cli.ConfigSetCommand(cfg, commandArgs[1:])
		default:
			fmt.Printf("Unknown config command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "tui":
		if err := cli.TUICommand(st, commandArgs); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "dashboard":
		if err := cli.DashboardCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		if len(commandArgs) == 0 || commandArgs[0] != "graph" {
			fmt.Println("Error: viz requires the 'graph' subcommand")
			printUsage()
			os.Exit(1)
		}
		if err := cli.VizGraphCommand(st, commandArgs[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`consultorml v%s - MercadoLibre consulting dashboard

USAGE:
  consultorml [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --store-path <path>    Store path (default: ~/.local/share/consultorml/store)
  --seed                 Load sample data into an empty store

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  crm                    Client, meeting, objective, and task commands
  sync                   Google Calendar and Fireflies import
  sheets pull            Import KPIs from a Google Sheet
  analyze                Import KPIs from a local CSV/TSV/XLSX file
  ai                     Perplexity-backed summaries and analyses
  config                 Show or store API credentials
  tui                    Interactive terminal interface
  dashboard              Print the portfolio overview
  viz graph              Export client → objective → task graph (DOT)

CRM COMMANDS:
  consultorml crm add-client --name "TechStore BA" --country Argentina --nick TECHSTORE_BA
  consultorml crm list-clients [--phase <fase>] [--priority <prioridad>]
  consultorml crm show-client <id>
  consultorml crm update-client [flags] <id>
  consultorml crm add-meeting --client <id> --date 2026-03-01 --time 10:00
  consultorml crm list-meetings [--client <id>]
  consultorml crm add-objective --client <id> --title "Subir conversión" --target 5
  consultorml crm add-task --client <id> --desc "Renovar fotos"
  consultorml crm list-tasks [--client <id>] [--status <estado>]
  consultorml crm toggle-task <id>
  consultorml crm list-playbooks
  consultorml crm apply-playbook --client <id> <playbook-id>
  consultorml crm history --client <id> [--remove <entry-id>]

SYNC COMMANDS:
  consultorml sync init                 Authenticate with Google (OAuth)
  consultorml sync google [--days 14]   Import upcoming calendar events
  consultorml sync fireflies [--limit 10]  Import recent transcripts
  consultorml sync status               Show last sync runs

EXAMPLES:
  # Load sample data and explore
  consultorml --seed tui

  # Import KPIs from a spreadsheet export
  consultorml analyze --client c1 ventas_marzo.xlsx

  # Pull a Google Sheet and ask the AI for an analysis
  consultorml sheets pull --client c1 --analyze "https://docs.google.com/spreadsheets/d/..."
`, version)
}
