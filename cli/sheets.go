// ABOUTME: Google Sheets and local file analysis CLI commands
// ABOUTME: Pulls tabular data, extracts KPIs, and optionally asks the AI
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"consultorml/ai"
	"consultorml/config"
	"consultorml/kpi"
	"consultorml/models"
	"consultorml/store"
	"consultorml/sync"
	"consultorml/tabular"
)

// SheetsPullCommand fetches a Google Sheet and imports its KPIs.
func SheetsPullCommand(cfg *config.Config, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("pull", flag.ExitOnError)
	clientID := fs.String("client", "", "Client whose KPIs to update (required)")
	sheetName := fs.String("sheet", "", "Sheet tab name (default: first tab)")
	analyze := fs.Bool("analyze", false, "Also ask the AI for an analysis")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: sheets pull --client <id> <spreadsheet-url>")
	}
	if *clientID == "" {
		return fmt.Errorf("--client is required")
	}

	spreadsheetID, err := sync.ExtractSpreadsheetID(fs.Arg(0))
	if err != nil {
		return err
	}

	token, err := sync.LoadToken()
	if err != nil {
		return fmt.Errorf("no authentication token found. Run 'consultorml sync init' first: %w", err)
	}

	service, err := sync.NewSheetsClient(cfg, token)
	if err != nil {
		return fmt.Errorf("failed to create Sheets client: %w", err)
	}

	name := *sheetName
	if name == "" {
		names, err := sync.FetchSheetNames(service, spreadsheetID)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return tabular.ErrNoSheets
		}
		name = names[0]
	}

	dataset, err := sync.FetchSheetData(service, spreadsheetID, name)
	if err != nil {
		return err
	}

	return importDataset(cfg, st, *clientID, dataset, "sheets:"+name, *analyze)
}

// AnalyzeFileCommand imports KPIs from a local CSV, TSV, or XLSX file.
func AnalyzeFileCommand(cfg *config.Config, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	clientID := fs.String("client", "", "Client whose KPIs to update (required)")
	analyze := fs.Bool("analyze", false, "Also ask the AI for an analysis")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: analyze --client <id> <file>")
	}
	if *clientID == "" {
		return fmt.Errorf("--client is required")
	}

	dataset, err := tabular.ParseFile(fs.Arg(0))
	if err != nil {
		return err
	}

	return importDataset(cfg, st, *clientID, dataset, fs.Arg(0), *analyze)
}

func importDataset(cfg *config.Config, st *store.Store, clientID string, dataset *tabular.Dataset, source string, analyze bool) error {
	if _, err := st.GetClient(clientID); err != nil {
		return fmt.Errorf("cliente no encontrado: %s", clientID)
	}

	fmt.Printf("✓ %d filas, %d columnas (%s)\n", len(dataset.Rows), len(dataset.Headers), strings.Join(dataset.Headers, ", "))

	patch := kpi.Extract(dataset.Headers, dataset.Rows)
	if patch == nil {
		fmt.Println("  → No se detectaron columnas de KPIs; no se actualizó nada.")
	} else {
		client, err := st.PatchClientKPIs(clientID, patch)
		if err != nil {
			return fmt.Errorf("failed to update KPIs: %w", err)
		}
		fmt.Println("  → KPIs actualizados:")
		if patch.SalesAmount != nil {
			fmt.Printf("    Ventas 30d: %s\n", models.FormatCurrency(client.KPIs.Ventas30d, client.Country))
		}
		if patch.ConversionRate != nil {
			fmt.Printf("    Conversión: %.1f%%\n", client.KPIs.Conversion)
		}
		if patch.ACOS != nil {
			fmt.Printf("    ACOS: %.1f%%\n", client.KPIs.ACOS)
		}
		if patch.OpenTickets != nil {
			fmt.Printf("    Tickets abiertos: %.0f\n", client.KPIs.Tickets)
		}
	}

	entry := models.AnalysisEntry{
		Source:  source,
		Rows:    len(dataset.Rows),
		Columns: len(dataset.Headers),
		Headers: dataset.Headers,
	}

	if analyze {
		aiClient := ai.NewClient(cfg.PerplexityAPIKey)
		analysis, err := aiClient.GenerateSpreadsheetAnalysis(context.Background(), dataset.RawText, source)
		if err != nil {
			return err
		}
		entry.Analysis = analysis
		fmt.Printf("\n%s\n", analysis)
	}

	if _, err := st.AppendAnalysis(clientID, entry); err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}

	return nil
}

// HistoryCommand lists a client's spreadsheet analysis history.
func HistoryCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	clientID := fs.String("client", "", "Client ID (required)")
	remove := fs.String("remove", "", "Remove one entry by ID")
	_ = fs.Parse(args)

	if *clientID == "" {
		return fmt.Errorf("--client is required")
	}

	if *remove != "" {
		if err := st.RemoveAnalysis(*clientID, *remove); err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}
		fmt.Printf("✓ Entrada eliminada: %s\n", *remove)
		return nil
	}

	entries, err := st.ListAnalyses(*clientID)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("Sin análisis registrados.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s  %s (%d filas, %d columnas)\n",
			entry.ID, entry.Timestamp.Format("2006-01-02 15:04"), entry.Source, entry.Rows, entry.Columns)
	}

	return nil
}
