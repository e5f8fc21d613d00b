package report

// Package report implements the progress-report pipeline: the local draft
// queue that survives offline periods, the submission flow that resolves
// project and member identifiers, posts the report, and uploads photos one
// by one, and an XLSX export of a finished report. A failed submission
// leaves the originating draft untouched so nothing is ever lost.
