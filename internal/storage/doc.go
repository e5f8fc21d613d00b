package storage

// Package storage provides the local key-value store used for cached session
// data, preferences, and the draft-report queue. Values are JSON-serialized
// strings persisted through Fyne's per-app preferences, which survive
// process restarts on every supported platform.
