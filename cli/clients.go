// ABOUTME: Client CLI commands
// ABOUTME: Human-friendly commands for managing clients and their KPIs
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"consultorml/models"
	"consultorml/store"
)

// AddClientCommand adds a new client.
func AddClientCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-client", flag.ExitOnError)
	name := fs.String("name", "", "Business name (required)")
	brand := fs.String("brand", "", "Brand on MercadoLibre")
	country := fs.String("country", "", "Country")
	contact := fs.String("contact", "", "Main contact person")
	email := fs.String("email", "", "Contact email")
	nick := fs.String("nick", "", "MercadoLibre seller nickname")
	level := fs.String("level", "", "MercadoLibre reputation level")
	category := fs.String("category", "", "Main product category")
	businessType := fs.String("business-type", "", "Business type")
	phase := fs.String("phase", models.Phases[0], "Consulting phase")
	priority := fs.String("priority", models.PriorityMedium, "Priority (Alta, Media, Baja)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	client := models.Client{
		ID:           st.NextID("c"),
		Name:         *name,
		Brand:        *brand,
		Country:      *country,
		Contact:      *contact,
		Email:        *email,
		NickML:       *nick,
		LevelML:      *level,
		Category:     *category,
		BusinessType: *businessType,
		Phase:        *phase,
		Priority:     *priority,
	}

	saved, err := st.UpsertClient(client)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	fmt.Printf("✓ Cliente creado: %s (ID: %s)\n", saved.Name, saved.ID)
	if saved.NickML != "" {
		fmt.Printf("  Nick ML: %s\n", saved.NickML)
	}
	if saved.Country != "" {
		fmt.Printf("  País: %s\n", saved.Country)
	}

	return nil
}

// ListClientsCommand lists all clients with their headline KPIs.
func ListClientsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-clients", flag.ExitOnError)
	phase := fs.String("phase", "", "Filter by consulting phase")
	priority := fs.String("priority", "", "Filter by priority")
	_ = fs.Parse(args)

	clients, err := st.ListClients()
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNOMBRE\tPAÍS\tFASE\tPRIORIDAD\tVENTAS 30D\tCONV %\tACOS %")

	shown := 0
	for _, client := range clients {
		if *phase != "" && client.Phase != *phase {
			continue
		}
		if *priority != "" && client.Priority != *priority {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\t%.1f\n",
			client.ID, client.Name, client.Country, client.Phase, client.Priority,
			models.FormatCurrency(client.KPIs.Ventas30d, client.Country),
			client.KPIs.Conversion, client.KPIs.ACOS)
		shown++
	}
	_ = w.Flush()

	fmt.Printf("\n%d cliente(s)\n", shown)
	return nil
}

// ShowClientCommand prints a full client dashboard view.
func ShowClientCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-client", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: show-client <id>")
	}
	clientID := fs.Arg(0)

	client, err := st.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("cliente no encontrado: %s", clientID)
	}

	fmt.Printf("%s (%s)\n", client.Name, client.ID)
	if client.Brand != "" {
		fmt.Printf("  Marca: %s\n", client.Brand)
	}
	fmt.Printf("  %s · %s · %s\n", client.Country, client.Phase, client.Priority)
	if client.Contact != "" {
		fmt.Printf("  Contacto: %s <%s>\n", client.Contact, client.Email)
	}

	fmt.Println("\nKPIs:")
	fmt.Printf("  Ventas 30d: %s\n", models.FormatCurrency(client.KPIs.Ventas30d, client.Country))
	fmt.Printf("  Conversión: %.1f%%\n", client.KPIs.Conversion)
	fmt.Printf("  ACOS: %.1f%%\n", client.KPIs.ACOS)
	fmt.Printf("  Tickets abiertos: %.0f\n", client.KPIs.Tickets)

	objectives, err := st.ListObjectivesByClient(clientID)
	if err != nil {
		return err
	}
	if len(objectives) > 0 {
		fmt.Println("\nObjetivos:")
		for _, o := range objectives {
			fmt.Printf("  [%s] %s (%s → %s, vence %s)\n", o.Status, o.Title,
				trimFloat(o.KPIInitial), trimFloat(o.KPITarget), o.Deadline)
		}
	}

	tasks, err := st.ListTasksByClient(clientID)
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		fmt.Println("\nTareas:")
		for _, task := range tasks {
			fmt.Printf("  [%s] %s — %s (%s)\n", task.Status, task.ID, task.Desc, task.Responsible)
		}
	}

	meetings, err := st.ListMeetingsByClient(clientID)
	if err != nil {
		return err
	}
	if len(meetings) > 0 {
		fmt.Println("\nReuniones:")
		for _, m := range meetings {
			fmt.Printf("  %s %s — %s\n", m.Date, m.Time, m.Summary)
		}
	}

	return nil
}

// UpdateClientCommand updates fields of an existing client.
func UpdateClientCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-client", flag.ExitOnError)
	name := fs.String("name", "", "Business name")
	phase := fs.String("phase", "", "Consulting phase")
	priority := fs.String("priority", "", "Priority")
	level := fs.String("level", "", "MercadoLibre reputation level")
	email := fs.String("email", "", "Contact email")
	nick := fs.String("nick", "", "MercadoLibre seller nickname")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: update-client [flags] <id>")
	}
	clientID := fs.Arg(0)

	client, err := st.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("cliente no encontrado: %s", clientID)
	}

	if *name != "" {
		client.Name = *name
	}
	if *phase != "" {
		client.Phase = *phase
	}
	if *priority != "" {
		client.Priority = *priority
	}
	if *level != "" {
		client.LevelML = *level
	}
	if *email != "" {
		client.Email = *email
	}
	if *nick != "" {
		client.NickML = *nick
	}

	if _, err := st.UpsertClient(*client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	fmt.Printf("✓ Cliente actualizado: %s\n", clientID)
	return nil
}

// SeedCommand loads the sample dataset into an empty store.
func SeedCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	_ = fs.Parse(args)

	seeded, err := st.SeedSampleData()
	if err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}
	if !seeded {
		fmt.Println("El store ya tiene datos; no se cargó nada.")
		return nil
	}

	fmt.Println("✓ Datos de ejemplo cargados")
	return nil
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
