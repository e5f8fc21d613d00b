package roster

import (
	"math"
	"strconv"

	"github.com/foryougroup/field-reporter/internal/model"
)

// Selector holds the members picked for the current report and their hours.
// Not safe for concurrent use; the editing flow is single-threaded.
type Selector struct {
	names   []string       // the full roster, in display order
	ids     map[string]int // display name -> employee id, when known
	members []model.ReportMember
}

// NewSelector creates a selector over the brigade roster. ids may be nil
// when employee ids are unknown; members are then resolved at submit time.
func NewSelector(names []string, ids map[string]int) *Selector {
	return &Selector{names: names, ids: ids}
}

func (s *Selector) indexOf(name string) int {
	for i, m := range s.members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

func (s *Selector) newMember(name string) model.ReportMember {
	m := model.ReportMember{Name: name}
	if id, ok := s.ids[name]; ok {
		m.EmployeeID = id
	}
	return m
}

// Toggle adds the member with zero hours when absent and removes it when
// present.
func (s *Selector) Toggle(name string) {
	if i := s.indexOf(name); i >= 0 {
		s.members = append(s.members[:i], s.members[i+1:]...)
		return
	}
	s.members = append(s.members, s.newMember(name))
}

// SelectAll selects the whole roster, or clears the selection when everyone
// is already selected.
func (s *Selector) SelectAll() {
	if len(s.members) == len(s.names) {
		s.members = nil
		return
	}
	s.members = make([]model.ReportMember, 0, len(s.names))
	for _, name := range s.names {
		s.members = append(s.members, s.newMember(name))
	}
}

// SetHours assigns hours from the raw input. Anything that does not parse
// as a number becomes 0; the selection never holds a NaN.
func (s *Selector) SetHours(name, raw string) {
	i := s.indexOf(name)
	if i < 0 {
		return
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		hours = 0
	}
	s.members[i].Hours = hours
}

// Remove drops the member unconditionally. Unlike activity removal there is
// no confirmation gate.
func (s *Selector) Remove(name string) {
	if i := s.indexOf(name); i >= 0 {
		s.members = append(s.members[:i], s.members[i+1:]...)
	}
}

// Members returns a snapshot of the selection.
func (s *Selector) Members() []model.ReportMember {
	out := make([]model.ReportMember, len(s.members))
	copy(out, s.members)
	return out
}

// Load replaces the selection, used when resuming a draft.
func (s *Selector) Load(members []model.ReportMember) {
	s.members = make([]model.ReportMember, len(members))
	copy(s.members, members)
}

// ZeroHourMembers returns the names of selected members without hours. The
// submit flow warns about these and lets the operator proceed or cancel;
// draft saves only need a non-empty selection.
func (s *Selector) ZeroHourMembers() []string {
	var names []string
	for _, m := range s.members {
		if m.Hours <= 0 {
			names = append(names, m.Name)
		}
	}
	return names
}
