package builder

// Package builder implements the stepwise activity selector that walks a
// project's configuration tree. Every upstream selection change cascades a
// reset of its dependent fields, so a stale value from a previous branch can
// never survive into a finalized activity. Validation runs only when the
// operator adds the activity; an invalid add is rejected and the selection
// stays as it was.
