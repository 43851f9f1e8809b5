package match

import (
	"testing"

	"consultorml/models"
)

func TestMatchByParticipantEmail(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "TechStore BA", Email: "info@techstore.com.ar"},
		{ID: "c2", Name: "Moda Express MX", Email: "ventas@modaex.mx"},
	}
	strategy := NewSubstringStrategy()

	record := Record{
		Title:        "Tema sin relación alguna",
		Participants: []string{"consultor@gmail.com", "ventas@modaex.mx"},
	}

	got := strategy.Match(record, clients)
	if got == nil || got.ID != "c2" {
		t.Fatalf("expected c2 by email, got %+v", got)
	}
}

func TestMatchEmailBidirectionalContainment(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "HogarDeco CL", Email: "contacto@hogardeco.cl"},
	}
	strategy := NewSubstringStrategy()

	// Participant string is a fragment of the client email; the
	// original product matched in both directions and we keep that.
	record := Record{Participants: []string{"hogardeco"}}

	got := strategy.Match(record, clients)
	if got == nil || got.ID != "c1" {
		t.Fatalf("expected c1 via reverse containment, got %+v", got)
	}
}

func TestMatchByTitleName(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "FitPro AR", Email: "hola@fitpro.com.ar"},
	}
	strategy := NewSubstringStrategy()

	record := Record{
		Title:        "Reunión mensual FitPro AR",
		Participants: []string{"otra@persona.com"},
	}

	got := strategy.Match(record, clients)
	if got == nil || got.ID != "c1" {
		t.Fatalf("expected c1 by title, got %+v", got)
	}
}

func TestMatchByNickname(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "Cliente Uno", NickML: "TECHSTORE_BA"},
	}
	strategy := NewSubstringStrategy()

	record := Record{Title: "Review techstore_ba performance"}

	got := strategy.Match(record, clients)
	if got == nil || got.ID != "c1" {
		t.Fatalf("expected c1 by nick, got %+v", got)
	}
}

func TestMatchFirstWinsOnSubstringNames(t *testing.T) {
	// "Tech" is a substring of "TechStore"; with Tech listed first it
	// must win even when the title names TechStore in full.
	tech := models.Client{ID: "a", Name: "Tech"}
	techStore := models.Client{ID: "b", Name: "TechStore"}
	strategy := NewSubstringStrategy()

	record := Record{Title: "TechStore BA meeting"}

	got := strategy.Match(record, []models.Client{tech, techStore})
	if got == nil || got.ID != "a" {
		t.Fatalf("expected first-listed client to win, got %+v", got)
	}

	got = strategy.Match(record, []models.Client{techStore, tech})
	if got == nil || got.ID != "b" {
		t.Fatalf("expected order-sensitive result, got %+v", got)
	}
}

func TestMatchNoMatchReturnsNil(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "TechStore BA", Email: "info@techstore.com.ar", NickML: "TECHSTORE_BA"},
	}
	strategy := NewSubstringStrategy()

	record := Record{
		Title:        "Almuerzo de equipo",
		Participants: []string{"nadie@example.com"},
	}

	if got := strategy.Match(record, clients); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestMatchEmptyEmailDoesNotMatchEverything(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "ZZZZ Imposible"},
	}
	strategy := NewSubstringStrategy()

	record := Record{Participants: []string{"cualquiera@example.com"}}

	if got := strategy.Match(record, clients); got != nil {
		t.Fatalf("empty client email must not match, got %+v", got)
	}
}
