// ABOUTME: Static playbook catalog shipped with the product
// ABOUTME: Each playbook expands into one objective plus its task sequence
package playbook

import "consultorml/models"

// Catalog is the built-in playbook set. Entries are immutable; the
// applier copies blueprints, never mutates them.
var Catalog = []models.PlaybookTemplate{
	{
		ID: "pb1", Name: "Onboarding Full ML", Type: "Onboarding",
		Tasks: []models.TaskBlueprint{
			{Type: "SEO Listings", Desc: "Auditoría inicial de listings activos", Order: 1},
			{Type: "Ads", Desc: "Revisión de campañas Product Ads existentes", Order: 2},
			{Type: "Pricing", Desc: "Análisis competitivo de precios por categoría", Order: 3},
			{Type: "Logística", Desc: "Evaluar tiempos de envío y fulfillment", Order: 4},
			{Type: "Atención al cliente", Desc: "Revisar métricas de atención y reputación", Order: 5},
		},
	},
	{
		ID: "pb2", Name: "Optimización de Listings", Type: "Optimización",
		Tasks: []models.TaskBlueprint{
			{Type: "SEO Listings", Desc: "Investigar keywords principales por producto", Order: 1},
			{Type: "SEO Listings", Desc: "Optimizar títulos con keywords de alto volumen", Order: 2},
			{Type: "SEO Listings", Desc: "Mejorar fichas técnicas y descripciones", Order: 3},
			{Type: "SEO Listings", Desc: "Actualizar fotos: fondo blanco + lifestyle", Order: 4},
			{Type: "SEO Listings", Desc: "Revisar preguntas frecuentes y responder pendientes", Order: 5},
		},
	},
	{
		ID: "pb3", Name: "Auditoría de Ads", Type: "Ads",
		Tasks: []models.TaskBlueprint{
			{Type: "Ads", Desc: "Analizar ACOS/TACOS por campaña", Order: 1},
			{Type: "Ads", Desc: "Identificar keywords negativas a excluir", Order: 2},
			{Type: "Ads", Desc: "Ajustar pujas por producto según rentabilidad", Order: 3},
			{Type: "Ads", Desc: "Evaluar Brand Ads vs Product Ads", Order: 4},
			{Type: "Ads", Desc: "Proponer estructura de campañas optimizada", Order: 5},
		},
	},
	{
		ID: "pb4", Name: "Revisión Mensual KPIs", Type: "Mantenimiento",
		Tasks: []models.TaskBlueprint{
			{Type: "Otro", Desc: "Actualizar ventas últimos 30 días", Order: 1},
			{Type: "Otro", Desc: "Comparar conversión vs mes anterior", Order: 2},
			{Type: "Ads", Desc: "Reportar ACOS y gasto publicitario", Order: 3},
			{Type: "Atención al cliente", Desc: "Revisar tickets abiertos y reputación", Order: 4},
			{Type: "Otro", Desc: "Definir objetivos para próximo mes", Order: 5},
		},
	},
}

// Find returns the catalog playbook with the given id, or nil.
func Find(id string) *models.PlaybookTemplate {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
