// ABOUTME: Meeting, objective, and task CLI commands
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"consultorml/models"
	"consultorml/playbook"
	"consultorml/store"
)

// AddMeetingCommand registers a meeting for a client.
func AddMeetingCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-meeting", flag.ExitOnError)
	clientID := fs.String("client", "", "Client ID (required)")
	date := fs.String("date", models.Today(), "Date (YYYY-MM-DD)")
	timeOfDay := fs.String("time", "", "Time (HH:MM)")
	meetingType := fs.String("type", "", "Meeting type")
	link := fs.String("link", "", "Video call link")
	summary := fs.String("summary", "", "Short summary")
	notes := fs.String("notes", "", "Free-form notes")
	_ = fs.Parse(args)

	if *clientID == "" {
		return fmt.Errorf("--client is required")
	}
	if _, err := st.GetClient(*clientID); err != nil {
		return fmt.Errorf("cliente no encontrado: %s", *clientID)
	}

	meeting := models.Meeting{
		ID:       st.NextID("m"),
		ClientID: *clientID,
		Date:     *date,
		Time:     *timeOfDay,
		Type:     *meetingType,
		Link:     *link,
		Summary:  *summary,
		Notes:    *notes,
	}

	if _, err := st.UpsertMeeting(meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	fmt.Printf("✓ Reunión creada: %s (%s %s)\n", meeting.ID, meeting.Date, meeting.Time)
	return nil
}

// ListMeetingsCommand lists meetings, optionally for one client.
func ListMeetingsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-meetings", flag.ExitOnError)
	clientID := fs.String("client", "", "Filter by client ID")
	_ = fs.Parse(args)

	var (
		meetings []models.Meeting
		err      error
	)
	if *clientID != "" {
		meetings, err = st.ListMeetingsByClient(*clientID)
	} else {
		meetings, err = st.ListMeetings()
	}
	if err != nil {
		return fmt.Errorf("failed to list meetings: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCLIENTE\tFECHA\tHORA\tTIPO\tRESUMEN")
	for _, m := range meetings {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.ClientID, m.Date, m.Time, m.Type, m.Summary)
	}
	_ = w.Flush()

	return nil
}

// AddObjectiveCommand creates an objective for a client.
func AddObjectiveCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-objective", flag.ExitOnError)
	clientID := fs.String("client", "", "Client ID (required)")
	title := fs.String("title", "", "Objective title (required)")
	desc := fs.String("desc", "", "Description")
	initial := fs.Float64("initial", 0, "Starting KPI value")
	target := fs.Float64("target", 0, "Target KPI value")
	deadline := fs.String("deadline", "", "Deadline (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *clientID == "" || *title == "" {
		return fmt.Errorf("--client and --title are required")
	}
	if _, err := st.GetClient(*clientID); err != nil {
		return fmt.Errorf("cliente no encontrado: %s", *clientID)
	}

	objective := models.Objective{
		ID:         st.NextID("o"),
		ClientID:   *clientID,
		Title:      *title,
		Desc:       *desc,
		KPIInitial: *initial,
		KPITarget:  *target,
		Deadline:   *deadline,
		Status:     models.ObjectivePending,
	}

	if _, err := st.UpsertObjective(objective); err != nil {
		return fmt.Errorf("failed to create objective: %w", err)
	}

	fmt.Printf("✓ Objetivo creado: %s — %s\n", objective.ID, objective.Title)
	return nil
}

// ListObjectivesCommand lists objectives, optionally for one client.
func ListObjectivesCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-objectives", flag.ExitOnError)
	clientID := fs.String("client", "", "Filter by client ID")
	_ = fs.Parse(args)

	var (
		objectives []models.Objective
		err        error
	)
	if *clientID != "" {
		objectives, err = st.ListObjectivesByClient(*clientID)
	} else {
		objectives, err = st.ListObjectives()
	}
	if err != nil {
		return fmt.Errorf("failed to list objectives: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCLIENTE\tESTADO\tTÍTULO\tKPI\tVENCE")
	for _, o := range objectives {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f → %.0f\t%s\n",
			o.ID, o.ClientID, o.Status, o.Title, o.KPIInitial, o.KPITarget, o.Deadline)
	}
	_ = w.Flush()

	return nil
}

// AddTaskCommand creates a task for a client.
func AddTaskCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	clientID := fs.String("client", "", "Client ID (required)")
	objectiveID := fs.String("objective", "", "Objective the task contributes to")
	taskType := fs.String("type", "", "Task type")
	desc := fs.String("desc", "", "Task description (required)")
	responsible := fs.String("responsible", models.ResponsibleConsultant, "Who does it")
	deadline := fs.String("deadline", "", "Deadline (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *clientID == "" || *desc == "" {
		return fmt.Errorf("--client and --desc are required")
	}
	if _, err := st.GetClient(*clientID); err != nil {
		return fmt.Errorf("cliente no encontrado: %s", *clientID)
	}

	task := models.Task{
		ID:          st.NextID("t"),
		ObjectiveID: *objectiveID,
		ClientID:    *clientID,
		Type:        *taskType,
		Desc:        *desc,
		Responsible: *responsible,
		Deadline:    *deadline,
		Status:      models.TaskPending,
	}

	if _, err := st.UpsertTask(task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Printf("✓ Tarea creada: %s — %s\n", task.ID, task.Desc)
	return nil
}

// ListTasksCommand lists tasks, optionally for one client.
func ListTasksCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-tasks", flag.ExitOnError)
	clientID := fs.String("client", "", "Filter by client ID")
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	var (
		tasks []models.Task
		err   error
	)
	if *clientID != "" {
		tasks, err = st.ListTasksByClient(*clientID)
	} else {
		tasks, err = st.ListTasks()
	}
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCLIENTE\tESTADO\tTIPO\tDESCRIPCIÓN\tVENCE")
	for _, task := range tasks {
		if *status != "" && task.Status != *status {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID, task.ClientID, task.Status, task.Type, task.Desc, task.Deadline)
	}
	_ = w.Flush()

	return nil
}

// ToggleTaskCommand advances a task to its next state.
func ToggleTaskCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("toggle-task", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: toggle-task <id>")
	}

	task, err := st.ToggleTaskStatus(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	fmt.Printf("✓ %s → %s\n", task.ID, task.Status)
	return nil
}

// ListPlaybooksCommand lists the playbook catalog.
func ListPlaybooksCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-playbooks", flag.ExitOnError)
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNOMBRE\tTIPO\tTAREAS")
	for _, tpl := range playbook.Catalog {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", tpl.ID, tpl.Name, tpl.Type, len(tpl.Tasks))
	}
	_ = w.Flush()

	return nil
}

// ApplyPlaybookCommand expands a playbook into an objective plus tasks.
func ApplyPlaybookCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("apply-playbook", flag.ExitOnError)
	clientID := fs.String("client", "", "Client ID (required)")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: apply-playbook --client <id> <playbook-id>")
	}
	if *clientID == "" {
		return fmt.Errorf("--client is required")
	}

	tpl := playbook.Find(fs.Arg(0))
	if tpl == nil {
		return fmt.Errorf("playbook no encontrado: %s", fs.Arg(0))
	}
	if _, err := st.GetClient(*clientID); err != nil {
		return fmt.Errorf("cliente no encontrado: %s", *clientID)
	}

	objective, tasks := playbook.Apply(tpl, *clientID, st, time.Now())
	if err := st.InsertPlaybookResult(objective, tasks); err != nil {
		return fmt.Errorf("failed to apply playbook: %w", err)
	}

	fmt.Printf("✓ Playbook aplicado: %s\n", tpl.Name)
	fmt.Printf("  Objetivo: %s — %s\n", objective.ID, objective.Title)
	fmt.Printf("  Tareas: %d\n", len(tasks))
	return nil
}
