// ABOUTME: Fixed vocabularies for client phases, priorities, and task states
// ABOUTME: Values are the Spanish product terms and are stored verbatim
package models

// Client lifecycle phases, in order.
var Phases = []string{"Onboarding", "Optimización", "Ads", "Expansión", "Mantenimiento"}

// Priority levels.
const (
	PriorityHigh   = "Alta"
	PriorityMedium = "Media"
	PriorityLow    = "Baja"
)

var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Task types.
var TaskTypes = []string{"SEO Listings", "Ads", "Pricing", "Logística", "Atención al cliente", "Otro"}

// Task states.
const (
	TaskPending    = "Pendiente"
	TaskInProgress = "En progreso"
	TaskBlocked    = "Bloqueada"
	TaskDone       = "Cumplida"
)

var TaskStates = []string{TaskPending, TaskInProgress, TaskBlocked, TaskDone}

// Objective states.
const (
	ObjectivePending    = "Pendiente"
	ObjectiveInProgress = "En progreso"
	ObjectiveDone       = "Cumplido"
)

// Meeting types.
var MeetingTypes = []string{"Onboarding", "Estrategia", "Performance", "Urgencia"}

// MercadoLibre seller tiers.
var MLLevels = []string{"Free", "Gold", "Platinum", "MercadoLíder", "MercadoLíder Gold", "MercadoLíder Platinum"}

// Supported marketplaces.
var Countries = []string{"Argentina", "México", "Brasil", "Colombia", "Chile", "Uruguay", "Perú"}

// Task responsible parties.
const (
	ResponsibleConsultant = "Consultor"
	ResponsibleTeam       = "Equipo"
	ResponsibleClient     = "Cliente"
)

// Meeting import sources.
const (
	SourceGoogleCalendar = "google_calendar"
	SourceFireflies      = "fireflies"
)

// NextTaskStatus cycles a task through Pendiente → En progreso →
// Cumplida → Pendiente. Bloqueada does not cycle.
func NextTaskStatus(status string) string {
	switch status {
	case TaskDone:
		return TaskPending
	case TaskPending:
		return TaskInProgress
	case TaskInProgress:
		return TaskDone
	default:
		return status
	}
}
