// ABOUTME: Visualization CLI commands
// ABOUTME: Graph export and terminal dashboard
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"consultorml/store"
	"consultorml/tui"
	"consultorml/viz"
)

// VizGraphCommand exports the client work breakdown as DOT.
func VizGraphCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	clientID := fs.String("client", "", "Limit to one client")
	_ = fs.Parse(args)

	generator := viz.NewGraphGenerator(st)
	dot, err := generator.GenerateClientGraph(*clientID)
	if err != nil {
		return err
	}

	if *output == "" {
		fmt.Println(dot)
		return nil
	}

	if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	fmt.Printf("✓ Grafo exportado a %s\n", *output)
	return nil
}

// DashboardCommand prints the portfolio overview.
func DashboardCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	stats, err := viz.GenerateDashboardStats(st, time.Now())
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderDashboard(stats))
	return nil
}

// TUICommand starts the interactive terminal interface.
func TUICommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	_ = fs.Parse(args)

	return tui.Run(st)
}
