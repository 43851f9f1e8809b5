// ABOUTME: Google and Fireflies sync CLI commands
// ABOUTME: Handles OAuth setup and meeting import operations
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"

	"consultorml/config"
	"consultorml/db"
	"consultorml/fireflies"
	"consultorml/match"
	"consultorml/store"
	"consultorml/sync"
)

// SyncInitCommand handles Google OAuth setup.
func SyncInitCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	_ = fs.Parse(args)

	ctx := context.Background()

	oauthConfig, err := sync.RequireOAuthConfig(cfg)
	if err != nil {
		return err
	}

	// Start local server for OAuth callback
	callbackChan := make(chan *oauth2.Token)
	errChan := make(chan error)

	http.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			return
		}

		token, err := oauthConfig.Exchange(ctx, code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange code: %w", err)
			return
		}

		callbackChan <- token
		_, _ = fmt.Fprintf(w, "Authorization successful! You can close this window.")
	})

	server := &http.Server{Addr: ":8080"}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)

	fmt.Println("Opening browser for Google OAuth...")
	fmt.Printf("\nIf browser doesn't open, visit this URL:\n%s\n\n", authURL)

	_ = openBrowser(authURL)

	select {
	case token := <-callbackChan:
		_ = server.Shutdown(ctx)

		if err := sync.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		fmt.Printf("\n✓ Authenticated successfully\n")
		fmt.Printf("✓ Tokens saved to %s\n\n", sync.TokenPath())
		fmt.Println("Ready to sync! Run 'consultorml sync google' to import meetings.")

		return nil

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		return fmt.Errorf("OAuth flow failed: %w", err)
	}
}

// SyncGoogleCommand imports upcoming Google Calendar events as meetings.
func SyncGoogleCommand(cfg *config.Config, database *sql.DB, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("google", flag.ExitOnError)
	days := fs.Int("days", sync.DefaultLookaheadDays, "How many days ahead to fetch")
	_ = fs.Parse(args)

	token, err := sync.LoadToken()
	if err != nil {
		return fmt.Errorf("no authentication token found. Run 'consultorml sync init' first: %w", err)
	}

	client, err := sync.NewCalendarClient(cfg, token)
	if err != nil {
		return fmt.Errorf("failed to create Calendar client: %w", err)
	}

	fmt.Println("Sincronizando Google Calendar...")
	result, err := sync.ImportCalendar(database, st, client, match.NewSubstringStrategy(), *days)
	if err != nil {
		return fmt.Errorf("calendar sync failed: %w", err)
	}

	fmt.Printf("\n✓ %d eventos leídos\n", result.Fetched)
	fmt.Printf("  → %d reuniones nuevas, %d actualizadas, %d con cliente\n",
		result.Imported, result.Updated, result.Matched)
	if result.Skipped > 0 {
		fmt.Printf("  → %d eventos omitidos\n", result.Skipped)
	}

	return nil
}

// SyncFirefliesCommand imports recent Fireflies transcripts as meetings.
func SyncFirefliesCommand(cfg *config.Config, database *sql.DB, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("fireflies", flag.ExitOnError)
	limit := fs.Int("limit", sync.DefaultTranscriptLimit, "How many recent transcripts to fetch")
	_ = fs.Parse(args)

	client := fireflies.NewClient(cfg.FirefliesAPIKey)
	if !client.Configured() {
		return fireflies.ErrNoAPIKey
	}

	fmt.Println("Sincronizando Fireflies...")
	result, err := sync.ImportFireflies(context.Background(), database, st, client, match.NewSubstringStrategy(), *limit)
	if err != nil {
		return fmt.Errorf("fireflies sync failed: %w", err)
	}

	fmt.Printf("\n✓ %d transcripciones leídas\n", result.Fetched)
	fmt.Printf("  → %d reuniones nuevas, %d actualizadas, %d con cliente\n",
		result.Imported, result.Updated, result.Matched)

	return nil
}

// SyncStatusCommand shows last sync runs per service.
func SyncStatusCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	_ = fs.Parse(args)

	states, err := db.GetAllSyncStates(database)
	if err != nil {
		return fmt.Errorf("failed to read sync states: %w", err)
	}
	if len(states) == 0 {
		fmt.Println("Todavía no se ejecutó ninguna sincronización.")
		return nil
	}

	for _, state := range states {
		fmt.Printf("%s: %s", state.Service, state.Status)
		if state.LastSyncTime != nil {
			fmt.Printf(" (última: %s)", state.LastSyncTime.Format("2006-01-02 15:04"))
		}
		if state.ErrorMessage != nil {
			fmt.Printf(" — %s", *state.ErrorMessage)
		}
		fmt.Println()
	}

	return nil
}

// openBrowser attempts to open URL in default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	command := exec.Command(cmd, args...)
	return command.Start()
}
