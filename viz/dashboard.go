// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides an ASCII portfolio overview for the consultant
package viz

import (
	"fmt"
	"strings"
	"time"

	"consultorml/models"
	"consultorml/store"
)

type DashboardStats struct {
	ClientsByPhase map[string]int

	TotalClients    int
	TotalObjectives int
	PendingTasks    int
	BlockedTasks    int

	// Meetings in the next 7 days.
	UpcomingMeetings []UpcomingMeeting

	// Tasks past their deadline.
	OverdueTasks []OverdueTask
}

type UpcomingMeeting struct {
	Date       string
	Time       string
	ClientName string
	Summary    string
}

type OverdueTask struct {
	ClientName string
	Desc       string
	Deadline   string
}

func GenerateDashboardStats(st *store.Store, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{
		ClientsByPhase: make(map[string]int),
	}

	clients, err := st.ListClients()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	stats.TotalClients = len(clients)

	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
		stats.ClientsByPhase[client.Phase]++
	}

	objectives, err := st.ListObjectives()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch objectives: %w", err)
	}
	stats.TotalObjectives = len(objectives)

	tasks, err := st.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	today := now.Format(models.DateFormat)
	for _, task := range tasks {
		switch task.Status {
		case models.TaskPending, models.TaskInProgress:
			stats.PendingTasks++
			if task.Deadline != "" && task.Deadline < today {
				stats.OverdueTasks = append(stats.OverdueTasks, OverdueTask{
					ClientName: names[task.ClientID],
					Desc:       task.Desc,
					Deadline:   task.Deadline,
				})
			}
		case models.TaskBlocked:
			stats.BlockedTasks++
		}
	}

	meetings, err := st.ListMeetings()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}

	weekOut := now.AddDate(0, 0, 7).Format(models.DateFormat)
	for _, meeting := range meetings {
		if meeting.Date >= today && meeting.Date <= weekOut {
			stats.UpcomingMeetings = append(stats.UpcomingMeetings, UpcomingMeeting{
				Date:       meeting.Date,
				Time:       meeting.Time,
				ClientName: names[meeting.ClientID],
				Summary:    meeting.Summary,
			})
		}
	}

	return stats, nil
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  CONSULTORML DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("CARTERA POR FASE\n")
	renderPhases(&out, stats.ClientsByPhase)
	out.WriteString("\n")

	out.WriteString("RESUMEN\n")
	out.WriteString(fmt.Sprintf("  👥 %d clientes  🎯 %d objetivos  ✅ %d tareas abiertas",
		stats.TotalClients, stats.TotalObjectives, stats.PendingTasks))
	if stats.BlockedTasks > 0 {
		out.WriteString(fmt.Sprintf("  🚫 %d bloqueadas", stats.BlockedTasks))
	}
	out.WriteString("\n\n")

	if len(stats.UpcomingMeetings) > 0 {
		out.WriteString("PRÓXIMAS REUNIONES (7 días)\n")
		for _, m := range stats.UpcomingMeetings {
			out.WriteString(fmt.Sprintf("  %s %s  %s — %s\n", m.Date, m.Time, m.ClientName, m.Summary))
		}
		out.WriteString("\n")
	}

	if len(stats.OverdueTasks) > 0 {
		out.WriteString("TAREAS VENCIDAS\n")
		for _, task := range stats.OverdueTasks {
			out.WriteString(fmt.Sprintf("  ⚠️  %s — %s (vencía %s)\n", task.ClientName, task.Desc, task.Deadline))
		}
	}

	return out.String()
}

func renderPhases(out *strings.Builder, byPhase map[string]int) {
	maxCount := 0
	for _, count := range byPhase {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, phase := range models.Phases {
		count, exists := byPhase[phase]
		if !exists {
			continue
		}

		barLength := (count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-14s %s  %2d\n", phase, bar, count))
	}
}
