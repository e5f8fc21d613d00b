package model

import (
	"encoding/json"
	"strings"
)

// Project is one entry of the project list.
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserSettings is the supervisor's active project and brigade roster.
type UserSettings struct {
	Project string   `json:"project"`
	Brigade []string `json:"brigade"`
}

// User is the cached authenticated user.
type User struct {
	Email  string `json:"email"`
	Access string `json:"access"`
	Name   string `json:"name,omitempty"`
}

// EmployeeTag is an NFC badge bound to an employee. The backend serializes it
// either as a bare numeric id or as an object with id and serial.
type EmployeeTag struct {
	ID     int    `json:"id"`
	Serial string `json:"serial"`
}

// UnmarshalJSON accepts both wire shapes of employee_tag.
func (t *EmployeeTag) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	if !strings.HasPrefix(trimmed, "{") {
		return json.Unmarshal(data, &t.ID)
	}
	type alias EmployeeTag
	return json.Unmarshal(data, (*alias)(t))
}

// Employee is one entry of the employee directory.
type Employee struct {
	ID             int          `json:"id"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	FullName       string       `json:"full_name,omitempty"`
	EmployeeTag    *EmployeeTag `json:"employee_tag,omitempty"`
	CurrentProject int          `json:"current_project,omitempty"`
	TagSerial      string       `json:"tag_serial,omitempty"`
}

// DisplayName returns the name shown in rosters: the backend full name when
// present, otherwise "First Last".
func (e *Employee) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// MatchesTag reports whether either tag representation carries the serial.
func (e *Employee) MatchesTag(serial string) bool {
	if serial == "" {
		return false
	}
	if e.EmployeeTag != nil && e.EmployeeTag.Serial == serial {
		return true
	}
	return e.TagSerial == serial
}
