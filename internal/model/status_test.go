package model

import "testing"

func TestDraftStatus_IsPending(t *testing.T) {
	tests := []struct {
		status   DraftStatus
		expected bool
	}{
		{StatusPending, true},
		{"", true}, // drafts saved before the status field existed
		{StatusSubmitted, false},
	}

	for _, test := range tests {
		if got := test.status.IsPending(); got != test.expected {
			t.Errorf("IsPending() with %q = %v, expected %v", test.status, got, test.expected)
		}
	}
}
