package model

// DraftStatus represents the lifecycle state of a locally stored report.
type DraftStatus string

const (
	// StatusPending means the report lives only in local storage.
	StatusPending DraftStatus = "pending"

	// StatusSubmitted means the backend accepted the report.
	StatusSubmitted DraftStatus = "submitted"
)

// String returns the string representation of DraftStatus.
func (ds DraftStatus) String() string {
	return string(ds)
}

// IsPending reports whether the report still awaits submission.
func (ds DraftStatus) IsPending() bool {
	return ds == StatusPending || ds == ""
}
