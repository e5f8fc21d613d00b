package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
	"github.com/foryougroup/field-reporter/internal/nfc"
)

type stubSettings struct {
	settings model.UserSettings
}

func (s stubSettings) UserSettings(context.Context) model.UserSettings { return s.settings }

type stubDirectory struct {
	byTag map[string]*model.Employee
}

func (s stubDirectory) ByTag(_ context.Context, serial string) (*model.Employee, error) {
	return s.byTag[serial], nil
}

type fakeScanner struct {
	serial string
}

func (f fakeScanner) Available() bool                      { return true }
func (f fakeScanner) Scan(context.Context) (string, error) { return f.serial, nil }
func (f fakeScanner) Cancel()                              {}

func newAPIClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := api.New(server.URL, 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestBrigadeMembersFromSettings(t *testing.T) {
	svc := NewService(nil, stubSettings{settings: model.UserSettings{
		Project: "Słoneczna Dolina",
		Brigade: []string{"Jan Kowalski", "Adam Nowak"},
	}}, nil, zap.NewNop())

	members := svc.BrigadeMembers(context.Background())
	assert.Equal(t, []string{"Jan Kowalski", "Adam Nowak"}, members)
}

func TestBrigadeMembersEmptyOnFailure(t *testing.T) {
	svc := NewService(nil, stubSettings{}, nil, zap.NewNop())
	assert.Empty(t, svc.BrigadeMembers(context.Background()))
}

func TestAddAndRemoveMember(t *testing.T) {
	var addedID int
	var removed string
	r := chi.NewRouter()
	r.Get("/csrf/", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{"csrfToken": "tok"})
	})
	r.Post("/brigade/members", func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			EmployeeID int `json:"employee_id"`
		}
		assert.NoError(t, render.DecodeJSON(req.Body, &payload))
		addedID = payload.EmployeeID
		render.JSON(w, req, api.Result{Success: true, Message: "dodano"})
	})
	r.Delete("/brigade/members/{id}", func(w http.ResponseWriter, req *http.Request) {
		removed = chi.URLParam(req, "id")
		render.JSON(w, req, api.Result{Success: true})
	})

	svc := NewService(newAPIClient(t, r), stubSettings{}, nil, zap.NewNop())

	result := svc.AddMember(context.Background(), 7)
	assert.True(t, result.Success)
	assert.Equal(t, 7, addedID)

	require.NoError(t, svc.RemoveMember(context.Background(), 9))
	assert.Equal(t, "9", removed)
}

func TestPickByTag(t *testing.T) {
	jan := &model.Employee{ID: 7, FirstName: "Jan", LastName: "Kowalski"}
	svc := NewService(nil, stubSettings{}, stubDirectory{byTag: map[string]*model.Employee{"04AB": jan}}, zap.NewNop())

	emp, err := svc.PickByTag(context.Background(), fakeScanner{serial: "04AB"})
	require.NoError(t, err)
	assert.Equal(t, jan, emp)
}

func TestPickByTagUnknownBadge(t *testing.T) {
	svc := NewService(nil, stubSettings{}, stubDirectory{}, zap.NewNop())
	_, err := svc.PickByTag(context.Background(), fakeScanner{serial: "FFFF"})
	assert.Error(t, err)
}

func TestPickByTagDegradesWhenUnavailable(t *testing.T) {
	svc := NewService(nil, stubSettings{}, stubDirectory{}, zap.NewNop())
	_, err := svc.PickByTag(context.Background(), nfc.Unavailable{})
	require.Error(t, err)
	assert.ErrorIs(t, err, nfc.ErrUnavailable)
}
