package model

import (
	"encoding/json"
	"sort"
)

// ProjectConfig describes a project's physical work breakdown: zones, the
// activity types available in each zone, and the type-specific hierarchy
// beneath each activity. Field names mirror the backend's Polish vocabulary.
//
// All accessors tolerate missing ancestors: an operator mid-selection simply
// sees no further choices, never an error.
type ProjectConfig struct {
	Zones map[string]Zone `json:"zones"`
}

// Zone holds the activities available in one zone.
type Zone struct {
	Activities map[string]ActivityDef `json:"aktywnosci"`
}

// ActivityDef is the per-type branch of the configuration tree. Exactly one
// group of fields is populated depending on the activity type it is keyed
// under: rows for Moduły/Konstrukcja, cable branches for Elektryka, trenches
// for Wykopy.
type ActivityDef struct {
	Rows     map[string]Row    `json:"rzędy,omitempty"`
	CableAC  *CableBranch      `json:"Kabel AC,omitempty"`
	CableDC  *CableBranch      `json:"Kabel DC,omitempty"`
	Trenches map[string]Trench `json:"wykopy,omitempty"`
}

// Row groups the tables of one module/construction row.
type Row struct {
	Tables map[string]Table `json:"stoły"`
}

// Table is a leaf carrying the module quantity bound.
type Table struct {
	MaxModules float64 `json:"ilosc_modulow_max"`
}

// CableBranch is the substation hierarchy of one cable type.
type CableBranch struct {
	Substations map[string]Substation `json:"trafostacje"`
}

// Substation groups inverters.
type Substation struct {
	Inverters map[string]Inverter `json:"inwertery"`
}

// Inverter is a leaf for Kabel AC (MaxLength set directly) or an inner node
// for Kabel DC (Strings populated).
type Inverter struct {
	MaxLength float64              `json:"dlugosc_max,omitempty"`
	Strings   map[string]StringDef `json:"stringi,omitempty"`
}

// UnmarshalJSON accepts both inverter wire shapes: stringi directly on the
// entry, and the backend's nesting of the strings under an extra "Kabel DC"
// key inside the inverter.
func (inv *Inverter) UnmarshalJSON(data []byte) error {
	type alias Inverter
	if err := json.Unmarshal(data, (*alias)(inv)); err != nil {
		return err
	}
	if inv.Strings != nil {
		return nil
	}
	var nested struct {
		DC *struct {
			Strings map[string]StringDef `json:"stringi"`
		} `json:"Kabel DC"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}
	if nested.DC != nil {
		inv.Strings = nested.DC.Strings
	}
	return nil
}

// StringDef is the Kabel DC leaf carrying the cable length bound.
type StringDef struct {
	MaxLength float64 `json:"dlugosc_max"`
}

// Trench is the Wykopy leaf carrying the quantity bound.
type Trench struct {
	MaxQuantity float64 `json:"ilosc_max"`
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ZoneIDs returns the zone identifiers in stable order.
func (c *ProjectConfig) ZoneIDs() []string {
	if c == nil {
		return nil
	}
	return sortedKeys(c.Zones)
}

// ActivityTypes returns the activity type names available in a zone.
func (c *ProjectConfig) ActivityTypes(zone string) []string {
	if c == nil {
		return nil
	}
	z, ok := c.Zones[zone]
	if !ok {
		return nil
	}
	return sortedKeys(z.Activities)
}

func (c *ProjectConfig) activityDef(zone, activityType string) (ActivityDef, bool) {
	if c == nil {
		return ActivityDef{}, false
	}
	z, ok := c.Zones[zone]
	if !ok {
		return ActivityDef{}, false
	}
	def, ok := z.Activities[activityType]
	return def, ok
}

// RowIDs returns the rows of a Moduły/Konstrukcja activity.
func (c *ProjectConfig) RowIDs(zone, activityType string) []string {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return nil
	}
	return sortedKeys(def.Rows)
}

// TableIDs returns the tables of one row.
func (c *ProjectConfig) TableIDs(zone, activityType, row string) []string {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return nil
	}
	r, ok := def.Rows[row]
	if !ok {
		return nil
	}
	return sortedKeys(r.Tables)
}

// ModuleMax returns the module quantity bound of one table.
func (c *ProjectConfig) ModuleMax(zone, activityType, row, table string) (float64, bool) {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return 0, false
	}
	r, ok := def.Rows[row]
	if !ok {
		return 0, false
	}
	t, ok := r.Tables[table]
	if !ok {
		return 0, false
	}
	return t.MaxModules, true
}

// CableTypes returns the cable type names present under an Elektryka
// activity, AC before DC.
func (c *ProjectConfig) CableTypes(zone, activityType string) []string {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return nil
	}
	var types []string
	if def.CableAC != nil {
		types = append(types, CableAC)
	}
	if def.CableDC != nil {
		types = append(types, CableDC)
	}
	return types
}

func (c *ProjectConfig) cableBranch(zone, activityType, cableType string) *CableBranch {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return nil
	}
	switch cableType {
	case CableAC:
		return def.CableAC
	case CableDC:
		return def.CableDC
	}
	return nil
}

// SubstationIDs returns the substations of one cable branch.
func (c *ProjectConfig) SubstationIDs(zone, activityType, cableType string) []string {
	branch := c.cableBranch(zone, activityType, cableType)
	if branch == nil {
		return nil
	}
	return sortedKeys(branch.Substations)
}

// InverterIDs returns the inverters of one substation.
func (c *ProjectConfig) InverterIDs(zone, activityType, cableType, substation string) []string {
	branch := c.cableBranch(zone, activityType, cableType)
	if branch == nil {
		return nil
	}
	sub, ok := branch.Substations[substation]
	if !ok {
		return nil
	}
	return sortedKeys(sub.Inverters)
}

func (c *ProjectConfig) inverter(zone, activityType, cableType, substation, inverter string) (Inverter, bool) {
	branch := c.cableBranch(zone, activityType, cableType)
	if branch == nil {
		return Inverter{}, false
	}
	sub, ok := branch.Substations[substation]
	if !ok {
		return Inverter{}, false
	}
	inv, ok := sub.Inverters[inverter]
	return inv, ok
}

// StringIDs returns the strings of one Kabel DC inverter.
func (c *ProjectConfig) StringIDs(zone, activityType, cableType, substation, inverter string) []string {
	inv, ok := c.inverter(zone, activityType, cableType, substation, inverter)
	if !ok {
		return nil
	}
	return sortedKeys(inv.Strings)
}

// CableMax returns the cable length bound for the selection. For Kabel AC the
// bound sits on the inverter and stringID is ignored; for Kabel DC it sits on
// the string.
func (c *ProjectConfig) CableMax(zone, activityType, cableType, substation, inverter, stringID string) (float64, bool) {
	inv, ok := c.inverter(zone, activityType, cableType, substation, inverter)
	if !ok {
		return 0, false
	}
	if cableType == CableAC {
		return inv.MaxLength, true
	}
	s, ok := inv.Strings[stringID]
	if !ok {
		return 0, false
	}
	return s.MaxLength, true
}

// TrenchIDs returns the trenches of a Wykopy activity.
func (c *ProjectConfig) TrenchIDs(zone, activityType string) []string {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return nil
	}
	return sortedKeys(def.Trenches)
}

// TrenchMax returns the quantity bound of one trench.
func (c *ProjectConfig) TrenchMax(zone, activityType, trench string) (float64, bool) {
	def, ok := c.activityDef(zone, activityType)
	if !ok {
		return 0, false
	}
	t, ok := def.Trenches[trench]
	if !ok {
		return 0, false
	}
	return t.MaxQuantity, true
}
