// ABOUTME: Sample dataset for first runs and demos
// ABOUTME: Seeds only when the client collection is empty
package store

import "consultorml/models"

var sampleClients = []models.Client{
	{
		ID: "c1", Name: "TechStore BA", Brand: "TechStore", Country: "Argentina",
		Contact: "+54 11 5555-1234", Email: "info@techstore.com.ar",
		NickML: "TECHSTORE_BA", LevelML: "MercadoLíder Gold",
		Category: "Electrónica", BusinessType: "Retail",
		Phase: "Optimización", Priority: models.PriorityHigh,
		KPIs: models.KPIs{Ventas30d: 2850000, Conversion: 8.2, ACOS: 18.5, Tickets: 3},
	},
	{
		ID: "c2", Name: "Moda Express MX", Brand: "ModaEx", Country: "México",
		Contact: "+52 55 4444-5678", Email: "ventas@modaex.mx",
		NickML: "MODAEXPRESS", LevelML: "Platinum",
		Category: "Ropa y Accesorios", BusinessType: "Marca propia",
		Phase: "Ads", Priority: models.PriorityMedium,
		KPIs: models.KPIs{Ventas30d: 580000, Conversion: 5.1, ACOS: 24.3, Tickets: 7},
	},
	{
		ID: "c3", Name: "HogarDeco CL", Brand: "HogarDeco", Country: "Chile",
		Contact: "+56 9 3333-9012", Email: "contacto@hogardeco.cl",
		NickML: "HOGARDECO_CL", LevelML: "MercadoLíder",
		Category: "Hogar y Muebles", BusinessType: "Distribuidor",
		Phase: "Onboarding", Priority: models.PriorityHigh,
		KPIs: models.KPIs{Ventas30d: 420000, Conversion: 3.8, ACOS: 0, Tickets: 12},
	},
	{
		ID: "c4", Name: "FitPro AR", Brand: "FitPro", Country: "Argentina",
		Contact: "+54 11 2222-3456", Email: "hola@fitpro.com.ar",
		NickML: "FITPRO_AR", LevelML: "Gold",
		Category: "Deportes", BusinessType: "Marca propia",
		Phase: "Expansión", Priority: models.PriorityLow,
		KPIs: models.KPIs{Ventas30d: 1200000, Conversion: 11.4, ACOS: 12.1, Tickets: 1},
	},
}

var sampleMeetings = []models.Meeting{
	{
		ID: "m1", ClientID: "c1", Date: "2026-02-14", Time: "10:00", Type: "Performance",
		Link:    "https://meet.google.com/abc",
		Summary: "Revisar resultados de optimización de listings Q1. Conversión subió 1.2pp. Definir estrategia Ads para Hot Sale.",
		Notes:   "Buen progreso en SEO. Priorizar campañas para Hot Sale.",
	},
	{
		ID: "m2", ClientID: "c3", Date: "2026-02-12", Time: "15:30", Type: "Onboarding",
		Link:    "https://meet.google.com/def",
		Summary: "Kickoff de onboarding. Relevamiento de catálogo y cuenta.",
		Notes:   "Cuenta con muchos listings sin optimizar. 12 tickets abiertos urgentes.",
	},
}

var sampleObjectives = []models.Objective{
	{ID: "o1", ClientID: "c1", Title: "Subir conversión a 10%", Desc: "Optimización integral de listings", KPIInitial: 8.2, KPITarget: 10, Deadline: "2026-04-30", Status: models.ObjectiveInProgress},
	{ID: "o5", ClientID: "c3", Title: "Resolver tickets abiertos", Desc: "Bajar tickets de 12 a menos de 3", KPIInitial: 12, KPITarget: 3, Deadline: "2026-02-20", Status: models.ObjectivePending},
}

var sampleTasks = []models.Task{
	{ID: "t1", ObjectiveID: "o1", ClientID: "c1", Type: "SEO Listings", Desc: "Optimizar títulos top 20 listings", Responsible: models.ResponsibleConsultant, Deadline: "2026-03-01", Status: models.TaskInProgress},
	{ID: "t7", ObjectiveID: "o5", ClientID: "c3", Type: "Atención al cliente", Desc: "Responder 12 tickets abiertos de compradores", Responsible: models.ResponsibleClient, Deadline: "2026-02-14", Status: models.TaskBlocked},
}

// SeedSampleData loads the demo dataset when the store is empty.
// Returns true if it seeded.
func (s *Store) SeedSampleData() (bool, error) {
	clients, err := s.ListClients()
	if err != nil {
		return false, err
	}
	if len(clients) > 0 {
		return false, nil
	}

	err = s.saveCollections(map[string]any{
		keyClients:    sampleClients,
		keyMeetings:   sampleMeetings,
		keyObjectives: sampleObjectives,
		keyTasks:      sampleTasks,
	})
	if err != nil {
		return false, err
	}
	// Re-seed the counter so fresh ids start above the sample ids.
	return true, s.seedCounter()
}
