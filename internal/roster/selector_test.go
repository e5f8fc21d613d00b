package roster

import (
	"reflect"
	"testing"

	"github.com/foryougroup/field-reporter/internal/model"
)

var crew = []string{"Jan Kowalski", "Adam Nowak", "Piotr Wiśniewski"}

func newTestSelector() *Selector {
	return NewSelector(crew, map[string]int{"Jan Kowalski": 7, "Adam Nowak": 9})
}

func TestToggleInvolution(t *testing.T) {
	s := newTestSelector()
	s.Toggle("Jan Kowalski")
	before := s.Members()

	s.Toggle("Adam Nowak")
	s.Toggle("Adam Nowak")

	after := s.Members()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("double toggle changed the selection: %v vs %v", before, after)
	}
}

func TestToggleResolvesEmployeeID(t *testing.T) {
	s := newTestSelector()
	s.Toggle("Jan Kowalski")
	s.Toggle("Piotr Wiśniewski") // not in the id index

	members := s.Members()
	if members[0].EmployeeID != 7 {
		t.Errorf("known member id = %d, expected 7", members[0].EmployeeID)
	}
	if members[1].EmployeeID != 0 {
		t.Errorf("unknown member id = %d, expected 0", members[1].EmployeeID)
	}
	if members[0].Hours != 0 || members[1].Hours != 0 {
		t.Error("new members must start with zero hours")
	}
}

func TestSelectAllToggles(t *testing.T) {
	s := newTestSelector()

	s.SelectAll()
	if got := len(s.Members()); got != len(crew) {
		t.Fatalf("SelectAll selected %d of %d", got, len(crew))
	}

	// Everyone selected: a second call clears.
	s.SelectAll()
	if got := len(s.Members()); got != 0 {
		t.Errorf("SelectAll on a full selection should clear, got %d", got)
	}

	// Partial selection: SelectAll fills up.
	s.Toggle("Jan Kowalski")
	s.SelectAll()
	if got := len(s.Members()); got != len(crew) {
		t.Errorf("SelectAll on a partial selection selected %d", got)
	}
}

func TestSetHoursCoercion(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"8", 8},
		{"3.5", 3.5},
		{"abc", 0},
		{"", 0},
		{"-2", 0},
		// ParseFloat accepts these without error; they must still coerce
		// to 0 or json.Marshal chokes on the whole draft collection.
		{"NaN", 0},
		{"Inf", 0},
		{"+Inf", 0},
		{"-Inf", 0},
	}

	for _, test := range tests {
		s := newTestSelector()
		s.Toggle("Jan Kowalski")
		s.SetHours("Jan Kowalski", test.raw)
		if got := s.Members()[0].Hours; got != test.expected {
			t.Errorf("SetHours(%q) = %v, expected %v", test.raw, got, test.expected)
		}
	}
}

func TestSetHoursUnknownMemberIgnored(t *testing.T) {
	s := newTestSelector()
	s.SetHours("Nie Wybrany", "8")
	if got := len(s.Members()); got != 0 {
		t.Errorf("SetHours on an unselected member added %d entries", got)
	}
}

func TestRemoveUnconditional(t *testing.T) {
	s := newTestSelector()
	s.Toggle("Jan Kowalski")
	s.Toggle("Adam Nowak")

	s.Remove("Jan Kowalski")
	members := s.Members()
	if len(members) != 1 || members[0].Name != "Adam Nowak" {
		t.Errorf("Members() after Remove = %v", members)
	}

	s.Remove("Jan Kowalski") // already gone, no-op
	if got := len(s.Members()); got != 1 {
		t.Errorf("repeat Remove changed the selection: %d members", got)
	}
}

func TestZeroHourMembers(t *testing.T) {
	s := newTestSelector()
	s.Toggle("Jan Kowalski")
	s.Toggle("Adam Nowak")
	s.SetHours("Jan Kowalski", "8")

	got := s.ZeroHourMembers()
	if !reflect.DeepEqual(got, []string{"Adam Nowak"}) {
		t.Errorf("ZeroHourMembers() = %v", got)
	}
}

func TestLoadRestoresDraftSelection(t *testing.T) {
	s := newTestSelector()
	saved := []model.ReportMember{{Name: "Jan Kowalski", Hours: 6, EmployeeID: 7}}
	s.Load(saved)
	if !reflect.DeepEqual(s.Members(), saved) {
		t.Errorf("Load() then Members() = %v", s.Members())
	}
}
