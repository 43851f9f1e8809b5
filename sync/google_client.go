// ABOUTME: Google API client setup for Calendar and Sheets integration
// ABOUTME: Creates authenticated services from a stored OAuth token
package sync

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"consultorml/config"
)

// NewCalendarClient creates a Google Calendar API service from an OAuth token.
func NewCalendarClient(cfg *config.Config, token *oauth2.Token) (*calendar.Service, error) {
	if token == nil {
		return nil, fmt.Errorf("token cannot be nil")
	}

	ctx := context.Background()
	client := NewOAuthConfig(cfg).Client(ctx, token)

	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return service, nil
}

// NewSheetsClient creates a Google Sheets API service from an OAuth token.
func NewSheetsClient(cfg *config.Config, token *oauth2.Token) (*sheets.Service, error) {
	if token == nil {
		return nil, fmt.Errorf("token cannot be nil")
	}

	ctx := context.Background()
	client := NewOAuthConfig(cfg).Client(ctx, token)

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return service, nil
}
