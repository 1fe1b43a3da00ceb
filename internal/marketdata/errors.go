package marketdata

import "errors"

// Fetch failures are classified so the delivery layer can show distinct
// messages. None of them is retried here; callers surface the failure
// once with a retry affordance.
var (
	// ErrUnreachable covers connection refused, DNS failures, and
	// timeouts: the upstream never answered.
	ErrUnreachable = errors.New("upstream unreachable")
	// ErrServer covers 5xx answers.
	ErrServer = errors.New("upstream server error")
	// ErrMalformed covers bodies missing the expected envelope shape
	// and envelopes with success=false.
	ErrMalformed = errors.New("malformed upstream response")
	// ErrNotFound covers 404 answers for single-record fetches.
	ErrNotFound = errors.New("record not found")
	// ErrFetch is the generic classification for everything else.
	ErrFetch = errors.New("fetch failed")
)
