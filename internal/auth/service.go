// Package auth handles login against the mobile endpoint and the locally
// cached session identity.
package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
	"github.com/foryougroup/field-reporter/internal/storage"
)

// Storage keys, kept identical to the mobile app so an upgraded install
// retains its session.
const (
	userKey    = "@solar_for_you_user_data"
	sessionKey = "@solar_for_you_session"
)

const (
	loginEndpoint  = "/login-mobile"
	logoutEndpoint = "/logout-mobile"
)

// LoginResponse is the backend's answer to a login attempt.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Access  string `json:"access,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Service provides authentication and cached-identity access.
type Service struct {
	api   *api.Client
	store storage.Store
	log   *zap.Logger
}

// NewService creates an auth service.
func NewService(client *api.Client, store storage.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: client, store: store, log: log}
}

// Login authenticates against the backend and caches the user on success.
// The backend expects the email under the "username" key.
func (s *Service) Login(ctx context.Context, email, password string) LoginResponse {
	payload := map[string]string{"username": email, "password": password}
	var resp LoginResponse
	if err := s.api.Post(ctx, loginEndpoint, payload, &resp); err != nil {
		s.log.Warn("login failed", zap.String("email", email), zap.Error(err))
		return LoginResponse{Success: false, Message: err.Error()}
	}
	if !resp.Success {
		if resp.Message == "" {
			resp.Message = "Nieznany błąd podczas logowania"
		}
		return resp
	}

	access := resp.Access
	if access == "" {
		access = "user"
	}
	user := model.User{Email: email, Access: access, Name: resp.Name}
	if err := s.store.Set(userKey, user); err != nil {
		s.log.Warn("cache user data", zap.Error(err))
	}
	return resp
}

// Logout clears the cached identity and tells the backend, best effort.
func (s *Service) Logout(ctx context.Context) bool {
	if err := s.api.Post(ctx, logoutEndpoint, struct{}{}, nil); err != nil {
		s.log.Info("backend logout failed, clearing local session anyway", zap.Error(err))
	}
	ok := true
	if err := s.store.Remove(userKey); err != nil {
		s.log.Warn("remove user data", zap.Error(err))
		ok = false
	}
	if err := s.store.Remove(sessionKey); err != nil {
		s.log.Warn("remove session data", zap.Error(err))
		ok = false
	}
	return ok
}

// CheckAuth returns the cached user, if any.
func (s *Service) CheckAuth() (model.User, bool) {
	var user model.User
	found, err := s.store.Get(userKey, &user)
	if err != nil {
		s.log.Warn("read cached user", zap.Error(err))
		return model.User{}, false
	}
	return user, found
}
