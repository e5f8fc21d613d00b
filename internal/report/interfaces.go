package report

import (
	"context"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
)

// ProjectResolver turns a project name into its backend id.
type ProjectResolver interface {
	ResolveID(ctx context.Context, name string) (int, error)
}

// EmployeeDirectory supplies the employee list used to resolve report
// members selected by name only.
type EmployeeDirectory interface {
	Employees(ctx context.Context) ([]model.Employee, error)
}

// Transport is the slice of the backend client the submission pipeline
// needs.
type Transport interface {
	Post(ctx context.Context, endpoint string, body, out any) error
	PostMultipart(ctx context.Context, endpoint string, fields map[string]string, file api.File, out any) error
}

// DraftDeleter removes the originating draft after a successful submission.
type DraftDeleter interface {
	Delete(id string) bool
}
