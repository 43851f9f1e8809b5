// ABOUTME: Playbook expansion into an objective and its task sequence
// ABOUTME: Deterministic given a template, a clock, and an id source
package playbook

import (
	"fmt"
	"time"

	"consultorml/models"
)

// IDSource issues fresh prefixed entity ids. The store's counter
// satisfies it.
type IDSource interface {
	NextID(prefix string) string
}

// Apply expands a template for a client: one objective (kpi 0→100,
// deadline two calendar months out, already in progress) and one task
// per blueprint in order (assigned to the consultant, due in 30 days).
// Callers persist the bundle atomically via the store.
func Apply(tpl *models.PlaybookTemplate, clientID string, ids IDSource, now time.Time) (models.Objective, []models.Task) {
	objective := models.Objective{
		ID:         ids.NextID("o"),
		ClientID:   clientID,
		Title:      tpl.Name,
		Desc:       fmt.Sprintf("Objetivo generado por playbook: %s", tpl.Name),
		KPIInitial: 0,
		KPITarget:  100,
		Deadline:   now.AddDate(0, 2, 0).Format(models.DateFormat),
		Status:     models.ObjectiveInProgress,
	}

	tasks := make([]models.Task, 0, len(tpl.Tasks))
	taskDeadline := now.AddDate(0, 0, 30).Format(models.DateFormat)
	for _, bp := range tpl.Tasks {
		tasks = append(tasks, models.Task{
			ID:          ids.NextID("t"),
			ObjectiveID: objective.ID,
			ClientID:    clientID,
			Type:        bp.Type,
			Desc:        bp.Desc,
			Responsible: models.ResponsibleConsultant,
			Deadline:    taskDeadline,
			Status:      models.TaskPending,
		})
	}

	return objective, tasks
}
