// ABOUTME: Task collection operations
// ABOUTME: Upsert plus status cycling used by the CLI and TUI
package store

import "consultorml/models"

func (s *Store) ListTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.loadCollection(keyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) ListTasksByClient(clientID string) ([]models.Task, error) {
	tasks, err := s.ListTasks()
	if err != nil {
		return nil, err
	}
	var out []models.Task
	for _, t := range tasks {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) UpsertTask(task models.Task) (models.Task, error) {
	if task.ID == "" {
		task.ID = s.NextID("t")
	}

	tasks, err := s.ListTasks()
	if err != nil {
		return models.Task{}, err
	}

	replaced := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		tasks = append(tasks, task)
	}

	if err := s.saveCollection(keyTasks, tasks); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ToggleTaskStatus advances a task one step in its status cycle and
// persists it. Blocked tasks stay blocked.
func (s *Store) ToggleTaskStatus(taskID string) (*models.Task, error) {
	tasks, err := s.ListTasks()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Status = models.NextTaskStatus(tasks[i].Status)
			if err := s.saveCollection(keyTasks, tasks); err != nil {
				return nil, err
			}
			return &tasks[i], nil
		}
	}
	return nil, ErrNotFound
}
