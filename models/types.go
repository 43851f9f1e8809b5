// ABOUTME: Data models for consulting CRM entities
// ABOUTME: Defines Client, Meeting, Objective, Task, and PlaybookTemplate structs
package models

import "time"

// KPIs holds the per-client metrics tracked on the dashboard.
// All values default to zero for a new client.
type KPIs struct {
	Ventas30d   float64 `json:"ventas30d"`
	Unidades    float64 `json:"unidades,omitempty"`
	Conversion  float64 `json:"conversion"`
	Visitas     float64 `json:"visitas,omitempty"`
	PrecioMedio float64 `json:"precio_medio,omitempty"`
	ACOS        float64 `json:"acos"`
	Considera   float64 `json:"consideracion,omitempty"`
	Recompra    float64 `json:"recompra,omitempty"`
	Tickets     float64 `json:"tickets"`
}

type Client struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand,omitempty"`
	Country      string `json:"country,omitempty"`
	Contact      string `json:"contact,omitempty"`
	Email        string `json:"email,omitempty"`
	NickML       string `json:"nick_ml,omitempty"`
	LevelML      string `json:"level_ml,omitempty"`
	Category     string `json:"category,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Phase        string `json:"phase,omitempty"`
	Priority     string `json:"priority,omitempty"`
	KPIs         KPIs   `json:"kpis"`
}

// Provenance identifies the external record a meeting was imported
// from, so re-imports update in place instead of duplicating.
type Provenance struct {
	Source     string `json:"source"`
	ExternalID string `json:"external_id"`
}

type Meeting struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"clientId,omitempty"`
	Date       string      `json:"date"`
	Time       string      `json:"time,omitempty"`
	Type       string      `json:"type,omitempty"`
	Link       string      `json:"link,omitempty"`
	Summary    string      `json:"summary,omitempty"`
	Transcript string      `json:"transcript,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Provenance *Provenance `json:"provenance,omitempty"`
}

type Objective struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"clientId"`
	Title      string  `json:"title"`
	Desc       string  `json:"desc,omitempty"`
	KPIInitial float64 `json:"kpi_initial"`
	KPITarget  float64 `json:"kpi_target"`
	Deadline   string  `json:"deadline,omitempty"`
	Status     string  `json:"status"`
}

type Task struct {
	ID          string `json:"id"`
	ObjectiveID string `json:"objectiveId,omitempty"`
	ClientID    string `json:"clientId"`
	Type        string `json:"type,omitempty"`
	Desc        string `json:"desc"`
	Responsible string `json:"responsible,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Status      string `json:"status"`
}

// TaskBlueprint is one step of a playbook, copied verbatim into a
// generated Task.
type TaskBlueprint struct {
	Type  string `json:"type"`
	Desc  string `json:"desc"`
	Order int    `json:"order"`
}

// PlaybookTemplate is a static catalog entry; the catalog itself lives
// in the playbook package.
type PlaybookTemplate struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Tasks []TaskBlueprint `json:"tasks"`
}

// AnalysisEntry is one row of a client's spreadsheet-analysis history.
type AnalysisEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	Headers   []string  `json:"headers"`
	Analysis  string    `json:"analysis,omitempty"`
}

// DateFormat is the calendar-date layout used on all entity date fields.
const DateFormat = "2006-01-02"
