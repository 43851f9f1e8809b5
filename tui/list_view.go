// ABOUTME: List view rendering for clients, tasks, and meetings
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"consultorml/models"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CONSULTORML"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderTable())
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Clientes", "Tareas", "Reuniones"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityClients:
		return m.renderClientsTable()
	case EntityTasks:
		return m.renderTasksTable()
	case EntityMeetings:
		return m.renderMeetingsTable()
	}
	return ""
}

func (m Model) renderClientsTable() string {
	clients, err := m.store.ListClients()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Cliente", Width: 22},
		{Title: "Fase", Width: 14},
		{Title: "Prioridad", Width: 10},
		{Title: "Ventas 30d", Width: 14},
		{Title: "Conv %", Width: 7},
		{Title: "ACOS %", Width: 7},
	}

	var rows []table.Row
	for _, client := range clients {
		rows = append(rows, table.Row{
			client.Name,
			client.Phase,
			client.Priority,
			models.FormatCurrency(client.KPIs.Ventas30d, client.Country),
			fmt.Sprintf("%.1f", client.KPIs.Conversion),
			fmt.Sprintf("%.1f", client.KPIs.ACOS),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderTasksTable() string {
	tasks, err := m.store.ListTasks()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Cliente", Width: 8},
		{Title: "Estado", Width: 12},
		{Title: "Descripción", Width: 40},
		{Title: "Vence", Width: 12},
	}

	var rows []table.Row
	for _, task := range tasks {
		rows = append(rows, table.Row{task.ID, task.ClientID, task.Status, task.Desc, task.Deadline})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderMeetingsTable() string {
	meetings, err := m.store.ListMeetings()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Fecha", Width: 12},
		{Title: "Hora", Width: 11},
		{Title: "Cliente", Width: 8},
		{Title: "Tipo", Width: 12},
		{Title: "Resumen", Width: 36},
	}

	var rows []table.Row
	for _, meeting := range meetings {
		rows = append(rows, table.Row{meeting.Date, meeting.Time, meeting.ClientID, meeting.Type, meeting.Summary})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := "↑/↓: mover · tab: cambiar vista · enter: detalle · d: dashboard · q: salir"
	if m.entityType == EntityTasks {
		help = "↑/↓: mover · tab: cambiar vista · espacio: avanzar estado · d: dashboard · q: salir"
	}
	return helpStyle.Render(help)
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityClients:
		clients, _ := m.store.ListClients()
		return len(clients)
	case EntityTasks:
		tasks, _ := m.store.ListTasks()
		return len(tasks)
	case EntityMeetings:
		meetings, _ := m.store.ListMeetings()
		return len(meetings)
	}
	return 0
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.entityType = (m.entityType + 1) % 3
		m.selectedRow = 0
		m.status = ""
	case "d":
		m.viewMode = ViewDashboard
	case " ":
		if m.entityType == EntityTasks {
			m = m.toggleSelectedTask()
		}
	case "enter":
		if m.entityType == EntityClients {
			clients, err := m.store.ListClients()
			if err == nil && m.selectedRow < len(clients) {
				m.selectedID = clients[m.selectedRow].ID
				m.viewMode = ViewDetail
			}
		}
	}
	return m, nil
}

func (m Model) toggleSelectedTask() Model {
	tasks, err := m.store.ListTasks()
	if err != nil || m.selectedRow >= len(tasks) {
		return m
	}

	task, err := m.store.ToggleTaskStatus(tasks[m.selectedRow].ID)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m
	}

	m.status = fmt.Sprintf("✓ %s → %s", task.ID, task.Status)
	return m
}
