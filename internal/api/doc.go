package api

// Package api wraps all backend communication: JSON requests with a shared
// timeout, session cookies carried on every call, and the CSRF token the
// backend demands on state-changing requests. A CSRF rejection is retried
// exactly once with a freshly fetched token before the failure surfaces.
