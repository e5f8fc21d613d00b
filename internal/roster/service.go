package roster

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
	"github.com/foryougroup/field-reporter/internal/nfc"
)

const (
	membersEndpoint      = "/brigade/members"
	removeMemberEndpoint = "/brigade/members/%d"

	scanTimeout = 15 * time.Second
)

// SettingsSource supplies the supervisor's settings, which carry the
// brigade roster.
type SettingsSource interface {
	UserSettings(ctx context.Context) model.UserSettings
}

// Directory resolves employees from badge serials.
type Directory interface {
	ByTag(ctx context.Context, serial string) (*model.Employee, error)
}

// Service manages the brigade roster against the backend.
type Service struct {
	api       *api.Client
	settings  SettingsSource
	directory Directory
	log       *zap.Logger
}

// NewService creates a roster service.
func NewService(client *api.Client, settings SettingsSource, directory Directory, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: client, settings: settings, directory: directory, log: log}
}

// BrigadeMembers returns the crew names available for selection. Failures
// degrade to an empty roster, matching the mobile client.
func (s *Service) BrigadeMembers(ctx context.Context) []string {
	settings := s.settings.UserSettings(ctx)
	return settings.Brigade
}

// AddMember adds an employee to the brigade.
func (s *Service) AddMember(ctx context.Context, employeeID int) api.Result {
	payload := map[string]int{"employee_id": employeeID}
	var result api.Result
	if err := s.api.Post(ctx, membersEndpoint, payload, &result); err != nil {
		s.log.Warn("add brigade member", zap.Int("employee_id", employeeID), zap.Error(err))
		return api.Result{Success: false, Message: err.Error()}
	}
	return result
}

// RemoveMember removes a brigade member by id.
func (s *Service) RemoveMember(ctx context.Context, memberID int) error {
	endpoint := fmt.Sprintf(removeMemberEndpoint, memberID)
	if err := s.api.Delete(ctx, endpoint, nil); err != nil {
		return fmt.Errorf("remove brigade member %d: %w", memberID, err)
	}
	return nil
}

// PickByTag scans one badge and resolves the employee, the NFC-assisted
// alternative to picking a member manually. The caller falls back to manual
// selection whenever an error is returned.
func (s *Service) PickByTag(ctx context.Context, provider nfc.Provider) (*model.Employee, error) {
	serial, err := nfc.ScanWithTimeout(ctx, provider, scanTimeout)
	if err != nil {
		return nil, fmt.Errorf("scan badge: %w", err)
	}
	emp, err := s.directory.ByTag(ctx, serial)
	if err != nil {
		return nil, fmt.Errorf("resolve badge %s: %w", serial, err)
	}
	if emp == nil {
		return nil, fmt.Errorf("no employee for badge %s", serial)
	}
	return emp, nil
}
