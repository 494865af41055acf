package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and clients return these
// (optionally wrapped) so services can translate them without string matching.
//
// These represent factual states about resources, not validation failures.
// Field-level problems (unparseable phone, unmatched affiliation) are never
// errors in this system; they resolve to empty values and are surfaced as
// missing-data highlights by the directory writer.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrNoToken     = errors.New("no token issued")
	ErrUnavailable = errors.New("unavailable")
)
