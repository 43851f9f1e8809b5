// ABOUTME: Config CLI commands
// ABOUTME: Shows and stores API credentials without echoing secrets
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"consultorml/config"
)

// ConfigShowCommand prints the config location and which keys are set.
func ConfigShowCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	_ = fs.Parse(args)

	fmt.Printf("Config: %s\n\n", config.Path())
	fmt.Printf("  Perplexity API key:   %s\n", maskKey(cfg.PerplexityAPIKey))
	fmt.Printf("  Fireflies API key:    %s\n", maskKey(cfg.FirefliesAPIKey))
	fmt.Printf("  Google client ID:     %s\n", maskKey(cfg.GoogleClientID))
	fmt.Printf("  Google client secret: %s\n", maskKey(cfg.GoogleClientSecret))
	fmt.Printf("\n  Store: %s\n", cfg.StorePath)
	fmt.Printf("  Sync DB: %s\n", cfg.SyncDBPath)

	return nil
}

// ConfigSetCommand stores one credential, prompting without echo.
func ConfigSetCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: config set <perplexity|fireflies|google-id|google-secret>")
	}

	key := fs.Arg(0)
	fmt.Printf("Valor para %s (no se muestra): ", key)
	value, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}

	trimmed := strings.TrimSpace(string(value))
	if trimmed == "" {
		return fmt.Errorf("valor vacío, no se guardó nada")
	}

	switch key {
	case "perplexity":
		cfg.PerplexityAPIKey = trimmed
	case "fireflies":
		cfg.FirefliesAPIKey = trimmed
	case "google-id":
		cfg.GoogleClientID = trimmed
	case "google-secret":
		cfg.GoogleClientSecret = trimmed
	default:
		return fmt.Errorf("clave desconocida: %s", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Guardado en %s\n", config.Path())
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return "(no configurada)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
