package report

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
)

const (
	createEndpoint = "/progress-report/create"
	imagesEndpoint = "/progress-report/%d/images"
)

// wireMember is the backend's shape for one member entry.
type wireMember struct {
	Employee    int     `json:"employee"`
	HoursWorked float64 `json:"hours_worked"`
}

// createPayload is the core report request.
type createPayload struct {
	Date       string           `json:"date"`
	Project    int              `json:"project"`
	Members    []wireMember     `json:"members"`
	Comment    string           `json:"comment,omitempty"`
	Activities []model.Activity `json:"activities,omitempty"`
}

type createResponse struct {
	ID int `json:"id"`
}

// SubmitResult is the outcome handed back to the calling flow.
type SubmitResult struct {
	Success bool
	Message string

	// ReportID is the backend id of the created report.
	ReportID int

	// FailedImages counts photos that did not upload. Image failures are
	// independent; they never roll back the report or other photos.
	FailedImages int
}

// Submitter converts an in-memory report into the backend's wire format,
// posts it, uploads photos, and reconciles local draft state. Steps run
// strictly in order with no partial-commit rollback.
type Submitter struct {
	projects  ProjectResolver
	directory EmployeeDirectory
	transport Transport
	drafts    DraftDeleter
	log       *zap.Logger
}

// NewSubmitter creates a submission pipeline.
func NewSubmitter(projects ProjectResolver, directory EmployeeDirectory, transport Transport, drafts DraftDeleter, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{
		projects:  projects,
		directory: directory,
		transport: transport,
		drafts:    drafts,
		log:       log,
	}
}

// Submit runs the pipeline. A failure before the core request succeeds
// leaves any originating draft untouched so the operator can retry later.
func (s *Submitter) Submit(ctx context.Context, report *model.ProgressReport) SubmitResult {
	projectID := report.ProjectID
	if projectID == 0 {
		if report.ProjectName == "" {
			return SubmitResult{Success: false, Message: "Brak wybranego projektu"}
		}
		id, err := s.projects.ResolveID(ctx, report.ProjectName)
		if err != nil {
			s.log.Warn("resolve project", zap.String("project", report.ProjectName), zap.Error(err))
			return SubmitResult{Success: false, Message: fmt.Sprintf("Nie znaleziono projektu: %v", err)}
		}
		projectID = id
	}

	members, err := s.resolveMembers(ctx, report.Members)
	if err != nil {
		return SubmitResult{Success: false, Message: err.Error()}
	}

	payload := createPayload{
		Date:       report.Date,
		Project:    projectID,
		Members:    members,
		Comment:    report.Comment,
		Activities: report.Activities,
	}
	var created createResponse
	if err := s.transport.Post(ctx, createEndpoint, payload, &created); err != nil {
		s.log.Warn("submit report", zap.String("date", report.Date), zap.Error(err))
		return SubmitResult{Success: false, Message: fmt.Sprintf("Wysyłanie raportu nie powiodło się: %v", err)}
	}

	failed := s.uploadImages(ctx, created.ID, report.Images)

	if report.ID != "" && report.IsDraft {
		if !s.drafts.Delete(report.ID) {
			s.log.Warn("delete submitted draft", zap.String("draft_id", report.ID))
		}
	}

	message := "Raport został wysłany pomyślnie!"
	if failed > 0 {
		message = fmt.Sprintf("Raport wysłany, ale %d zdjęć nie udało się przesłać.", failed)
	}
	return SubmitResult{Success: true, Message: message, ReportID: created.ID, FailedImages: failed}
}

// resolveMembers maps each report member to a backend employee id. Members
// with a known id pass through; the rest are matched by splitting the
// display name into first/last tokens against the directory. Unresolvable
// members are dropped with a warning, never aborting the submission.
func (s *Submitter) resolveMembers(ctx context.Context, members []model.ReportMember) ([]wireMember, error) {
	resolved := make([]wireMember, 0, len(members))
	var directory []model.Employee
	loaded := false

	for _, m := range members {
		if m.EmployeeID > 0 {
			resolved = append(resolved, wireMember{Employee: m.EmployeeID, HoursWorked: m.Hours})
			continue
		}
		if !loaded {
			employees, err := s.directory.Employees(ctx)
			if err != nil {
				return nil, fmt.Errorf("nie udało się pobrać listy pracowników: %v", err)
			}
			directory = employees
			loaded = true
		}
		id, ok := matchByName(directory, m.Name)
		if !ok {
			s.log.Warn("member not in directory, dropped from submission", zap.String("name", m.Name))
			continue
		}
		resolved = append(resolved, wireMember{Employee: id, HoursWorked: m.Hours})
	}
	return resolved, nil
}

// matchByName splits a display name into first-name and last-name tokens and
// exact-matches against the directory.
func matchByName(directory []model.Employee, name string) (int, bool) {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return 0, false
	}
	first := tokens[0]
	last := strings.Join(tokens[1:], " ")
	for i := range directory {
		if directory[i].FirstName == first && directory[i].LastName == last {
			return directory[i].ID, true
		}
	}
	return 0, false
}

// uploadImages posts each photo separately, in array order. One failure does
// not block the rest; the count of failures is returned.
func (s *Submitter) uploadImages(ctx context.Context, reportID int, images []model.ReportImage) int {
	failed := 0
	endpoint := fmt.Sprintf(imagesEndpoint, reportID)
	for _, img := range images {
		file := api.File{Field: "image", Path: img.URI, Name: img.Name, Type: img.Type}
		fields := map[string]string{"report": fmt.Sprint(reportID)}
		if err := s.transport.PostMultipart(ctx, endpoint, fields, file, nil); err != nil {
			s.log.Warn("upload image", zap.String("name", img.Name), zap.Error(err))
			failed++
		}
	}
	return failed
}
