package model

import "strings"

// Activity type names as they appear in the project configuration and on the
// wire. The vocabulary is fixed by the backend.
const (
	ActivityModules      = "Moduły"
	ActivityConstruction = "Konstrukcja"
	ActivityElectrical   = "Elektryka"
	ActivityTrenching    = "Wykopy"
)

// Cable types within the electrical branch.
const (
	CableAC = "Kabel AC"
	CableDC = "Kabel DC"
)

// Activity is one validated unit of reported work within a zone.
type Activity struct {
	ID           string          `json:"id"`
	Zone         string          `json:"zone"`
	ActivityType string          `json:"activityType"`
	Details      ActivityDetails `json:"details"`
}

// ActivityDetails holds the per-type sub-selections. Which fields are set
// depends on ActivityType; quantities and lengths stay strings for wire
// compatibility and are parsed where a number is needed.
type ActivityDetails struct {
	Row        string `json:"row,omitempty"`
	Table      string `json:"table,omitempty"`
	CableType  string `json:"cableType,omitempty"`
	Substation string `json:"substation,omitempty"`
	Inverter   string `json:"inverter,omitempty"`
	String     string `json:"string,omitempty"`
	Trench     string `json:"trench,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	Length     string `json:"length,omitempty"`
}

// IsZero reports whether no detail field has been set yet.
func (d ActivityDetails) IsZero() bool {
	return d == ActivityDetails{}
}

// Summary returns a compact single-line description of the activity for
// lists and exports, e.g. "Strefa A · Wykopy · W1 · 12".
func (a *Activity) Summary() string {
	parts := []string{"Strefa " + a.Zone, a.ActivityType}
	d := a.Details
	switch a.ActivityType {
	case ActivityModules, ActivityConstruction:
		if d.Row != "" {
			parts = append(parts, d.Row)
		}
		if d.Table != "" {
			parts = append(parts, d.Table)
		}
	case ActivityElectrical:
		if d.CableType != "" {
			parts = append(parts, d.CableType)
		}
		if d.Substation != "" {
			parts = append(parts, d.Substation)
		}
		if d.Inverter != "" {
			parts = append(parts, d.Inverter)
		}
		if d.String != "" {
			parts = append(parts, d.String)
		}
	case ActivityTrenching:
		if d.Trench != "" {
			parts = append(parts, d.Trench)
		}
	}
	if d.Quantity != "" {
		parts = append(parts, d.Quantity)
	}
	if d.Length != "" {
		parts = append(parts, d.Length+" m")
	}
	return strings.Join(parts, " · ")
}
