// ABOUTME: Client detail view and dashboard view rendering
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"consultorml/models"
	"consultorml/viz"
)

func (m Model) renderDetailView() string {
	client, err := m.store.GetClient(m.selectedID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", client.Name, client.ID)))
	s.WriteString("\n\n")

	if client.Brand != "" {
		s.WriteString(fmt.Sprintf("Marca: %s\n", client.Brand))
	}
	s.WriteString(fmt.Sprintf("%s · %s · %s\n", client.Country, client.Phase, client.Priority))
	if client.Contact != "" {
		s.WriteString(fmt.Sprintf("Contacto: %s <%s>\n", client.Contact, client.Email))
	}
	if client.NickML != "" {
		s.WriteString(fmt.Sprintf("Nick ML: %s (%s)\n", client.NickML, client.LevelML))
	}

	s.WriteString("\nKPIs\n")
	s.WriteString(fmt.Sprintf("  Ventas 30d: %s\n", models.FormatCurrency(client.KPIs.Ventas30d, client.Country)))
	s.WriteString(fmt.Sprintf("  Conversión: %.1f%%   ACOS: %.1f%%   Tickets: %.0f\n",
		client.KPIs.Conversion, client.KPIs.ACOS, client.KPIs.Tickets))

	objectives, _ := m.store.ListObjectivesByClient(client.ID)
	if len(objectives) > 0 {
		s.WriteString("\nObjetivos\n")
		for _, o := range objectives {
			s.WriteString(fmt.Sprintf("  [%s] %s (%.0f → %.0f)\n", o.Status, o.Title, o.KPIInitial, o.KPITarget))
		}
	}

	tasks, _ := m.store.ListTasksByClient(client.ID)
	if len(tasks) > 0 {
		s.WriteString("\nTareas\n")
		for _, task := range tasks {
			s.WriteString(fmt.Sprintf("  [%s] %s\n", task.Status, task.Desc))
		}
	}

	meetings, _ := m.store.ListMeetingsByClient(client.ID)
	if len(meetings) > 0 {
		s.WriteString("\nReuniones\n")
		for _, meeting := range meetings {
			s.WriteString(fmt.Sprintf("  %s %s — %s\n", meeting.Date, meeting.Time, meeting.Summary))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: volver · q: salir"))

	return s.String()
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewMode = ViewList
	}
	return m, nil
}

func (m Model) renderDashboardView() string {
	stats, err := viz.GenerateDashboardStats(m.store, time.Now())
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder
	s.WriteString(viz.RenderDashboard(stats))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: volver · q: salir"))
	return s.String()
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "d":
		m.viewMode = ViewList
	}
	return m, nil
}
