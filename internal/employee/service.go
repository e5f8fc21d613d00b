// Package employee reads the employee directory and resolves workers from
// scanned NFC badge serials.
package employee

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
)

const (
	employeesEndpoint = "/api/employees/"
	byTagEndpoint     = "/api/employees/by-tag/%s/"
)

// Service provides employee directory lookups.
type Service struct {
	api *api.Client
	log *zap.Logger
}

// NewService creates an employee service.
func NewService(client *api.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: client, log: log}
}

// Employees returns the full directory.
func (s *Service) Employees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.api.Get(ctx, employeesEndpoint, &employees); err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	return employees, nil
}

// ByTag resolves an employee from an NFC badge serial. The dedicated lookup
// endpoint is tried first; when the backend variant lacks it, the full
// directory is scanned locally. A missing employee is (nil, nil).
func (s *Service) ByTag(ctx context.Context, serial string) (*model.Employee, error) {
	var direct model.Employee
	err := s.api.Get(ctx, fmt.Sprintf(byTagEndpoint, serial), &direct)
	if err == nil && direct.ID != 0 {
		return &direct, nil
	}
	if err != nil {
		s.log.Info("tag lookup endpoint unavailable, scanning directory",
			zap.String("serial", serial), zap.Error(err))
	}

	employees, err := s.Employees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].MatchesTag(serial) {
			return &employees[i], nil
		}
	}
	s.log.Info("no employee for tag", zap.String("serial", serial))
	return nil, nil
}

// NameIndex maps display names to employee ids, used to resolve report
// members selected by name only.
func (s *Service) NameIndex(ctx context.Context) (map[string]int, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(employees))
	for i := range employees {
		index[employees[i].DisplayName()] = employees[i].ID
	}
	return index, nil
}
