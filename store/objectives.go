// ABOUTME: Objective and task collection operations
// ABOUTME: Includes the atomic insert used by playbook application
package store

import "consultorml/models"

func (s *Store) ListObjectives() ([]models.Objective, error) {
	var objectives []models.Objective
	if err := s.loadCollection(keyObjectives, &objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

func (s *Store) ListObjectivesByClient(clientID string) ([]models.Objective, error) {
	objectives, err := s.ListObjectives()
	if err != nil {
		return nil, err
	}
	var out []models.Objective
	for _, o := range objectives {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) UpsertObjective(objective models.Objective) (models.Objective, error) {
	if objective.ID == "" {
		objective.ID = s.NextID("o")
	}

	objectives, err := s.ListObjectives()
	if err != nil {
		return models.Objective{}, err
	}

	replaced := false
	for i := range objectives {
		if objectives[i].ID == objective.ID {
			objectives[i] = objective
			replaced = true
			break
		}
	}
	if !replaced {
		objectives = append(objectives, objective)
	}

	if err := s.saveCollection(keyObjectives, objectives); err != nil {
		return models.Objective{}, err
	}
	return objective, nil
}

// InsertPlaybookResult appends an objective and its tasks in a single
// transaction; callers never observe the objective without its tasks.
func (s *Store) InsertPlaybookResult(objective models.Objective, tasks []models.Task) error {
	objectives, err := s.ListObjectives()
	if err != nil {
		return err
	}
	existing, err := s.ListTasks()
	if err != nil {
		return err
	}

	objectives = append(objectives, objective)
	existing = append(existing, tasks...)

	return s.saveCollections(map[string]any{
		keyObjectives: objectives,
		keyTasks:      existing,
	})
}
