// ABOUTME: Client collection operations
// ABOUTME: Upsert-only persistence plus KPI patching from extracted spreadsheet data
package store

import (
	"consultorml/kpi"
	"consultorml/models"
)

// ListClients returns every client in stored order.
func (s *Store) ListClients() ([]models.Client, error) {
	var clients []models.Client
	if err := s.loadCollection(keyClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient looks a client up by id.
func (s *Store) GetClient(id string) (*models.Client, error) {
	clients, err := s.ListClients()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, ErrNotFound
}

// UpsertClient inserts or replaces a client. A missing id gets a fresh
// one; an existing id replaces the record in place, preserving
// collection position.
func (s *Store) UpsertClient(client models.Client) (models.Client, error) {
	if client.ID == "" {
		client.ID = s.NextID("c")
	}

	clients, err := s.ListClients()
	if err != nil {
		return models.Client{}, err
	}

	replaced := false
	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
			replaced = true
			break
		}
	}
	if !replaced {
		clients = append(clients, client)
	}

	if err := s.saveCollection(keyClients, clients); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// PatchClientKPIs applies a partial KPI patch to a client. Absent keys
// leave the current values untouched.
func (s *Store) PatchClientKPIs(clientID string, patch *kpi.Patch) (*models.Client, error) {
	if patch.IsEmpty() {
		return s.GetClient(clientID)
	}

	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}

	if patch.SalesAmount != nil {
		client.KPIs.Ventas30d = *patch.SalesAmount
	}
	if patch.ConversionRate != nil {
		client.KPIs.Conversion = *patch.ConversionRate
	}
	if patch.ACOS != nil {
		client.KPIs.ACOS = *patch.ACOS
	}
	if patch.OpenTickets != nil {
		client.KPIs.Tickets = *patch.OpenTickets
	}

	updated, err := s.UpsertClient(*client)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
