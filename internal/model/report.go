package model

// ReportMember is a crew member included in a progress report.
type ReportMember struct {
	Name  string `json:"name"`
	Hours float64 `json:"hours"`
	// EmployeeID is the backend identifier, when already resolved. Members
	// without one are matched against the employee list at submit time.
	EmployeeID int `json:"employee_id,omitempty"`
}

// ReportImage is a photo attached to a report before submission.
type ReportImage struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	Type string `json:"type"` // MIME type, e.g. "image/jpeg"
}

// ProgressReport is a daily progress report, either a local draft or a
// report being prepared for submission.
type ProgressReport struct {
	ID          string         `json:"id,omitempty"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Members     []ReportMember `json:"members"`
	Images      []ReportImage  `json:"images"`
	Comment     string         `json:"comment,omitempty"`
	IsDraft     bool           `json:"isDraft"`
	ProjectName string         `json:"projectName,omitempty"`
	ProjectID   int            `json:"projectId,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	Activities  []Activity     `json:"activities,omitempty"`
	Status      DraftStatus    `json:"status,omitempty"`
}

// ZeroHourMembers returns the names of selected members with no hours
// assigned. Final submission warns about these; draft saves do not.
func (r *ProgressReport) ZeroHourMembers() []string {
	var names []string
	for _, m := range r.Members {
		if m.Hours <= 0 {
			names = append(names, m.Name)
		}
	}
	return names
}

// HasActivities reports whether the report carries at least one activity.
func (r *ProgressReport) HasActivities() bool {
	return len(r.Activities) > 0
}
