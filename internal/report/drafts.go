package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/model"
	"github.com/foryougroup/field-reporter/internal/storage"
)

// draftsKey stores the whole draft collection as one JSON array, the same
// key the mobile app used.
const draftsKey = "@solar_for_you_draft_reports"

// DraftStore persists in-progress reports locally, independent of backend
// availability. Storage failures are logged and surfaced as boolean results;
// they never propagate as panics or unhandled errors into calling flows.
//
// Mutations read the full collection, modify it, and write it back. Two
// overlapping mutations race with last-writer-wins; the editing flow is
// single-threaded so this is acceptable.
type DraftStore struct {
	store storage.Store
	log   *zap.Logger

	// now is swappable for deterministic ids in tests.
	now func() time.Time
}

// NewDraftStore creates a draft store over the local key-value store.
func NewDraftStore(store storage.Store, log *zap.Logger) *DraftStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DraftStore{store: store, log: log, now: time.Now}
}

func (d *DraftStore) load() ([]model.ProgressReport, bool) {
	var drafts []model.ProgressReport
	if _, err := d.store.Get(draftsKey, &drafts); err != nil {
		d.log.Warn("read draft reports", zap.Error(err))
		return nil, false
	}
	return drafts, true
}

// Save upserts a draft. A report without an id receives a fresh time-based
// one; re-saving with the same id updates in place. The stored copy is
// always flagged as a pending draft.
func (d *DraftStore) Save(report *model.ProgressReport) bool {
	if report.ID == "" {
		report.ID = fmt.Sprintf("draft_%d", d.now().UnixNano())
	}
	report.IsDraft = true
	report.Status = model.StatusPending
	if report.CreatedAt == "" {
		report.CreatedAt = d.now().Format(time.RFC3339)
	}

	drafts, ok := d.load()
	if !ok {
		return false
	}
	updated := false
	for i := range drafts {
		if drafts[i].ID == report.ID {
			drafts[i] = *report
			updated = true
			break
		}
	}
	if !updated {
		drafts = append(drafts, *report)
	}
	if err := d.store.Set(draftsKey, drafts); err != nil {
		d.log.Warn("write draft reports", zap.Error(err))
		return false
	}
	return true
}

// List returns all stored drafts. Failures degrade to an empty list.
func (d *DraftStore) List() []model.ProgressReport {
	drafts, _ := d.load()
	return drafts
}

// GetByID returns the matching draft.
func (d *DraftStore) GetByID(id string) (*model.ProgressReport, bool) {
	drafts, ok := d.load()
	if !ok {
		return nil, false
	}
	for i := range drafts {
		if drafts[i].ID == id {
			return &drafts[i], true
		}
	}
	return nil, false
}

// Delete removes a draft by id. Deleting an absent id succeeds.
func (d *DraftStore) Delete(id string) bool {
	drafts, ok := d.load()
	if !ok {
		return false
	}
	kept := drafts[:0]
	for _, draft := range drafts {
		if draft.ID != id {
			kept = append(kept, draft)
		}
	}
	if err := d.store.Set(draftsKey, kept); err != nil {
		d.log.Warn("write draft reports", zap.Error(err))
		return false
	}
	return true
}
