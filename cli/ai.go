// ABOUTME: AI CLI commands backed by Perplexity
// ABOUTME: Meeting summaries, optimization analyses, and suggested tasks
package cli

import (
	"context"
	"flag"
	"fmt"

	"consultorml/ai"
	"consultorml/config"
	"consultorml/store"
)

// AISummaryCommand summarizes a meeting transcript.
func AISummaryCommand(cfg *config.Config, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: ai summary <meeting-id>")
	}

	meetings, err := st.ListMeetings()
	if err != nil {
		return fmt.Errorf("failed to list meetings: %w", err)
	}

	for _, meeting := range meetings {
		if meeting.ID != fs.Arg(0) {
			continue
		}
		if meeting.Transcript == "" {
			return fmt.Errorf("la reunión %s no tiene transcripción", meeting.ID)
		}

		clientName := meeting.ClientID
		if client, err := st.GetClient(meeting.ClientID); err == nil {
			clientName = client.Name
		}

		aiClient := ai.NewClient(cfg.PerplexityAPIKey)
		summary, err := aiClient.GenerateMeetingSummary(context.Background(), meeting.Transcript, clientName, meeting.Type)
		if err != nil {
			return err
		}

		meeting.Summary = summary
		if _, err := st.UpsertMeeting(meeting); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}

		fmt.Println(summary)
		return nil
	}

	return fmt.Errorf("reunión no encontrada: %s", fs.Arg(0))
}

// AIAnalysisCommand generates an optimization analysis for a client.
func AIAnalysisCommand(cfg *config.Config, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("analysis", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: ai analysis <client-id>")
	}

	client, err := st.GetClient(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("cliente no encontrado: %s", fs.Arg(0))
	}

	aiClient := ai.NewClient(cfg.PerplexityAPIKey)
	analysis, err := aiClient.GenerateOptimizationAnalysis(context.Background(), client)
	if err != nil {
		return err
	}

	fmt.Println(analysis)
	return nil
}

// AITasksCommand suggests actionable tasks for a client.
func AITasksCommand(cfg *config.Config, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ExitOnError)
	contextNote := fs.String("context", "", "Extra context for the suggestions")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: ai tasks <client-id>")
	}

	client, err := st.GetClient(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("cliente no encontrado: %s", fs.Arg(0))
	}

	aiClient := ai.NewClient(cfg.PerplexityAPIKey)
	tasks, err := aiClient.GenerateActionableTasks(context.Background(), client, *contextNote)
	if err != nil {
		return err
	}

	fmt.Println(tasks)
	return nil
}
