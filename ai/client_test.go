package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consultorml/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("pplx-test")
	c.apiURL = server.URL
	return c
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer pplx-test" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Model != "sonar" {
			t.Errorf("expected model sonar, got %q", req.Model)
		}
		if req.MaxTokens != 1500 || req.Temperature != 0.3 {
			t.Errorf("unexpected request params: %+v", req)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "📋 RESUMEN: todo bien"}},
			},
		})
	})

	out, err := client.Complete(context.Background(), "sistema", "usuario")
	if err != nil {
		t.Fatal(err)
	}
	if out != "📋 RESUMEN: todo bien" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCompleteEmptyChoicesFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	out, err := client.Complete(context.Background(), "s", "u")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Sin respuesta de la IA." {
		t.Errorf("expected fallback message, got %q", out)
	}
}

func TestCompleteAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code: %v", err)
	}
}

func TestCompleteMissingKey(t *testing.T) {
	client := NewClient("")

	_, err := client.Complete(context.Background(), "s", "u")
	if err != ErrNoAPIKey {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestMeetingSummaryPrompt(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	})

	_, err := client.GenerateMeetingSummary(context.Background(), "hablamos de ads", "TechStore BA", "Performance")
	if err != nil {
		t.Fatal(err)
	}

	user := captured.Messages[1].Content
	for _, want := range []string{"TechStore BA", "Performance", "hablamos de ads", "PRÓXIMOS PASOS"} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestOptimizationPromptIncludesKPIs(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	})

	c := &models.Client{
		Name: "TechStore BA", Country: "Argentina", Category: "Electrónica",
		KPIs: models.KPIs{Ventas30d: 2850000, Conversion: 8.2, ACOS: 18.5, Tickets: 3},
	}
	_, err := client.GenerateOptimizationAnalysis(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}

	user := captured.Messages[1].Content
	for _, want := range []string{"$2850000", "8.2%", "18.5%", "Tickets abiertos: 3"} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q in:\n%s", want, user)
		}
	}
}
