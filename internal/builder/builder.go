package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/foryougroup/field-reporter/internal/model"
)

// State describes how far the current selection has progressed.
type State string

const (
	// StateIdle means no zone is chosen yet.
	StateIdle State = "Idle"

	// StateZoneChosen means a zone is chosen but no activity type.
	StateZoneChosen State = "ZoneChosen"

	// StateActivityChosen means zone and activity type are chosen with no
	// detail selections yet.
	StateActivityChosen State = "ActivityChosen"

	// StateDetailsInProgress means some detail fields are set but the
	// selection would not yet pass validation.
	StateDetailsInProgress State = "DetailsInProgress"

	// StateValidDetails means the selection passes validation and can be
	// added.
	StateValidDetails State = "ValidDetails"
)

// Builder accumulates validated activities against one project
// configuration. It is not safe for concurrent use; the calling flow runs
// on a single goroutine.
type Builder struct {
	cfg *model.ProjectConfig

	zone         string
	activityType string
	details      model.ActivityDetails

	activities []model.Activity
}

// New creates a builder over the given project configuration.
func New(cfg *model.ProjectConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Config returns the configuration tree the builder walks, for populating
// choice lists.
func (b *Builder) Config() *model.ProjectConfig {
	return b.cfg
}

// SetZone selects a zone. Changing the zone invalidates everything
// downstream: the activity type and all detail fields are cleared.
func (b *Builder) SetZone(zone string) {
	b.zone = zone
	b.activityType = ""
	b.details = model.ActivityDetails{}
}

// SetActivityType selects the activity type and clears all detail fields.
func (b *Builder) SetActivityType(activityType string) {
	b.activityType = activityType
	b.details = model.ActivityDetails{}
}

// SetRow selects a row and clears the dependent table selection.
func (b *Builder) SetRow(row string) {
	b.details.Row = row
	b.details.Table = ""
}

// SetTable selects a table. Terminal within its branch; nothing cascades.
func (b *Builder) SetTable(table string) {
	b.details.Table = table
}

// SetCableType selects the cable type and clears the whole electrical chain
// beneath it.
func (b *Builder) SetCableType(cableType string) {
	b.details.CableType = cableType
	b.details.Substation = ""
	b.details.Inverter = ""
	b.details.String = ""
	b.details.Length = ""
}

// SetSubstation selects a substation and clears inverter, string and length.
func (b *Builder) SetSubstation(substation string) {
	b.details.Substation = substation
	b.details.Inverter = ""
	b.details.String = ""
	b.details.Length = ""
}

// SetInverter selects an inverter and clears string and length.
func (b *Builder) SetInverter(inverter string) {
	b.details.Inverter = inverter
	b.details.String = ""
	b.details.Length = ""
}

// SetString selects a Kabel DC string. Terminal; nothing cascades.
func (b *Builder) SetString(stringID string) {
	b.details.String = stringID
}

// SetTrench selects a trench. Terminal; nothing cascades.
func (b *Builder) SetTrench(trench string) {
	b.details.Trench = trench
}

// SetQuantity sets the reported quantity. Terminal; nothing cascades.
func (b *Builder) SetQuantity(quantity string) {
	b.details.Quantity = quantity
}

// SetLength sets the reported cable length. Terminal; nothing cascades.
func (b *Builder) SetLength(length string) {
	b.details.Length = length
}

// Current returns the in-progress selection.
func (b *Builder) Current() (zone, activityType string, details model.ActivityDetails) {
	return b.zone, b.activityType, b.details
}

// State reports the machine's position for the current selection.
func (b *Builder) State() State {
	switch {
	case b.zone == "":
		return StateIdle
	case b.activityType == "":
		return StateZoneChosen
	case b.details.IsZero():
		return StateActivityChosen
	case b.Validate() == nil:
		return StateValidDetails
	default:
		return StateDetailsInProgress
	}
}

// MaxFor returns the configured bound for the current selection, when the
// selection is deep enough to have one. The bound is advisory: it is shown
// to the operator but not enforced by Validate.
func (b *Builder) MaxFor() (float64, bool) {
	d := b.details
	switch b.activityType {
	case model.ActivityModules, model.ActivityConstruction:
		return b.cfg.ModuleMax(b.zone, b.activityType, d.Row, d.Table)
	case model.ActivityElectrical:
		return b.cfg.CableMax(b.zone, b.activityType, d.CableType, d.Substation, d.Inverter, d.String)
	case model.ActivityTrenching:
		return b.cfg.TrenchMax(b.zone, b.activityType, d.Trench)
	}
	return 0, false
}

func requireNumeric(field, value string) error {
	if value == "" {
		return fmt.Errorf("brak pola %s", field)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("pole %s nie jest liczbą: %q", field, value)
	}
	return nil
}

func require(field, value string) error {
	if value == "" {
		return fmt.Errorf("brak pola %s", field)
	}
	return nil
}

// Validate checks the current selection against the per-type required
// fields. Configured maxima are deliberately not checked here; out-of-range
// values are accepted, matching how reports have always been filed.
func (b *Builder) Validate() error {
	if b.zone == "" {
		return fmt.Errorf("nie wybrano strefy")
	}
	d := b.details
	switch b.activityType {
	case model.ActivityModules:
		for _, err := range []error{
			require("rząd", d.Row),
			require("stół", d.Table),
			requireNumeric("ilość", d.Quantity),
		} {
			if err != nil {
				return err
			}
		}
	case model.ActivityConstruction:
		for _, err := range []error{
			require("rząd", d.Row),
			require("stół", d.Table),
		} {
			if err != nil {
				return err
			}
		}
	case model.ActivityElectrical:
		checks := []error{
			require("typ kabla", d.CableType),
			require("trafostacja", d.Substation),
			require("inwerter", d.Inverter),
		}
		if d.CableType == model.CableDC {
			checks = append(checks, require("string", d.String))
		}
		checks = append(checks, requireNumeric("długość", d.Length))
		for _, err := range checks {
			if err != nil {
				return err
			}
		}
	case model.ActivityTrenching:
		for _, err := range []error{
			require("wykop", d.Trench),
			requireNumeric("ilość", d.Quantity),
		} {
			if err != nil {
				return err
			}
		}
	case "":
		return fmt.Errorf("nie wybrano aktywności")
	default:
		return fmt.Errorf("nieznana aktywność: %q", b.activityType)
	}
	return nil
}

// Add finalizes the current selection: on passing validation the activity
// receives a fresh id, is appended to the list, and the builder resets to
// idle. On failure the selection is left untouched.
func (b *Builder) Add() (model.Activity, error) {
	if err := b.Validate(); err != nil {
		return model.Activity{}, err
	}
	activity := model.Activity{
		ID:           uuid.NewString(),
		Zone:         b.zone,
		ActivityType: b.activityType,
		Details:      b.details,
	}
	b.activities = append(b.activities, activity)
	b.Reset()
	return activity, nil
}

// Remove deletes an activity by id after the confirm gate approves it.
// Removal is unconditional once confirmed; it returns whether an activity
// was removed.
func (b *Builder) Remove(id string, confirm func(model.Activity) bool) bool {
	for i, a := range b.activities {
		if a.ID != id {
			continue
		}
		if confirm != nil && !confirm(a) {
			return false
		}
		b.activities = append(b.activities[:i], b.activities[i+1:]...)
		return true
	}
	return false
}

// Activities returns a snapshot of the accumulated list.
func (b *Builder) Activities() []model.Activity {
	out := make([]model.Activity, len(b.activities))
	copy(out, b.activities)
	return out
}

// Load replaces the accumulated list, used when resuming a draft.
func (b *Builder) Load(activities []model.Activity) {
	b.activities = make([]model.Activity, len(activities))
	copy(b.activities, activities)
}

// Reset clears the in-progress selection without touching the accumulated
// list.
func (b *Builder) Reset() {
	b.zone = ""
	b.activityType = ""
	b.details = model.ActivityDetails{}
}
