package model

// Package model defines domain data structures used across the app: progress
// reports, crew members, activities, the project configuration tree, and
// status enums. Structures carry the backend's wire tags so they can be
// serialized directly, and the configuration tree exposes nil-safe accessors
// for partially made selections.
