// ABOUTME: Prompt builders for meeting summaries, client analysis, and task generation
// ABOUTME: All prompts request structured Spanish output with fixed section markers
package ai

import (
	"context"
	"fmt"

	"consultorml/models"
)

// GenerateMeetingSummary produces a structured summary from a meeting
// transcript.
func (c *Client) GenerateMeetingSummary(ctx context.Context, transcript, clientName, meetingType string) (string, error) {
	systemPrompt := `Eres un asistente experto en consultoría de MercadoLibre.
Tu trabajo es analizar transcripciones de reuniones con clientes vendedores de MercadoLibre y generar resúmenes estructurados.
Responde SIEMPRE en español.`

	userPrompt := fmt.Sprintf(`Analiza esta transcripción de una reunión tipo "%s" con el cliente "%s" de MercadoLibre.

TRANSCRIPCIÓN:
%s

Genera un resumen estructurado con EXACTAMENTE estos apartados:
📋 RESUMEN: (2-3 oraciones del tema principal)
✅ ACUERDOS: (lista de acuerdos tomados)
📌 PRÓXIMOS PASOS: (acciones concretas con responsable)
⚠️ ALERTAS: (problemas o riesgos identificados)`, meetingType, clientName, transcript)

	return c.Complete(ctx, systemPrompt, userPrompt)
}

// GenerateOptimizationAnalysis produces actionable recommendations
// from a client's profile and current KPIs.
func (c *Client) GenerateOptimizationAnalysis(ctx context.Context, client *models.Client) (string, error) {
	systemPrompt := `Eres un consultor experto en MercadoLibre con años de experiencia ayudando vendedores a optimizar sus ventas.
Tienes conocimiento profundo de SEO de listings, Product Ads, logística, atención al cliente y estrategias de crecimiento en MercadoLibre.
Responde SIEMPRE en español con accionables concretos.`

	userPrompt := fmt.Sprintf(`Analiza los datos de este cliente de MercadoLibre y genera recomendaciones accionables:

CLIENTE: %s
MARCA: %s
PAÍS: %s
CATEGORÍA: %s
TIPO NEGOCIO: %s
NIVEL ML: %s
FASE ACTUAL: %s

KPIs ACTUALES:
- Ventas últimos 30 días: $%.0f
- Tasa de conversión: %.1f%%
- ACOS (costo publicitario): %.1f%%
- Tickets abiertos: %.0f

Genera un análisis con EXACTAMENTE estos apartados:
🔍 DIAGNÓSTICO: (evaluación general en 2-3 oraciones)
🚀 ACCIONES PRIORITARIAS: (top 5 acciones concretas ordenadas por impacto)
📊 KPIs A MEJORAR: (métricas target realistas para los próximos 30 días)
💡 OPORTUNIDADES: (oportunidades de crecimiento específicas para esta categoría/país)
⚠️ RIESGOS: (problemas potenciales a vigilar)`,
		client.Name, client.Brand, client.Country, client.Category,
		client.BusinessType, client.LevelML, client.Phase,
		client.KPIs.Ventas30d, client.KPIs.Conversion, client.KPIs.ACOS, client.KPIs.Tickets)

	return c.Complete(ctx, systemPrompt, userPrompt)
}

// GenerateActionableTasks turns an analysis into a pipe-delimited task
// list the consultant can review.
func (c *Client) GenerateActionableTasks(ctx context.Context, client *models.Client, analysisContext string) (string, error) {
	systemPrompt := `Eres un consultor de MercadoLibre. Genera tareas específicas y accionables basándote en el análisis proporcionado.
Cada tarea debe ser concreta, medible y asignable. Responde SIEMPRE en español.`

	userPrompt := fmt.Sprintf(`Basándote en este análisis del cliente "%s" (%s, %s), genera tareas accionables:

CONTEXTO:
%s

Genera EXACTAMENTE 5-7 tareas en formato:
Para cada tarea incluye:
- TIPO: (SEO Listings / Ads / Pricing / Logística / Atención al cliente / Otro)
- DESCRIPCIÓN: (acción concreta y específica)
- RESPONSABLE: (Consultor / Equipo / Cliente)
- PRIORIDAD: (Alta / Media / Baja)
- PLAZO SUGERIDO: (1 semana / 2 semanas / 1 mes)

Formato de respuesta: una tarea por línea con el formato:
[TIPO] | [DESCRIPCIÓN] | [RESPONSABLE] | [PRIORIDAD] | [PLAZO]`,
		client.Name, client.Category, client.Country, analysisContext)

	return c.Complete(ctx, systemPrompt, userPrompt)
}

// GenerateSpreadsheetAnalysis analyzes a raw table dump from an
// uploaded or fetched spreadsheet.
func (c *Client) GenerateSpreadsheetAnalysis(ctx context.Context, rawText, sourceName string) (string, error) {
	systemPrompt := `Eres un analista de datos experto en e-commerce y MercadoLibre.
Analizas planillas de ventas, publicaciones y métricas de vendedores. Responde SIEMPRE en español.`

	userPrompt := fmt.Sprintf(`Analiza los datos de esta planilla ("%s") de un vendedor de MercadoLibre:

%s

Genera un análisis con EXACTAMENTE estos apartados:
📊 RESUMEN DE DATOS: (qué contiene la planilla, en 2-3 oraciones)
📈 HALLAZGOS: (patrones, valores atípicos y tendencias relevantes)
🚀 RECOMENDACIONES: (acciones concretas basadas en los datos)
⚠️ ALERTAS: (datos faltantes o inconsistencias detectadas)`, sourceName, rawText)

	return c.Complete(ctx, systemPrompt, userPrompt)
}
