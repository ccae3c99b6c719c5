package sut

import "fmt"

// TransportError reports a failed HTTP exchange with the SUT: either the
// request never completed or the SUT answered with a non-2xx status.
type TransportError struct {
	Status int    // zero when the request itself failed
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("SUT returned HTTP %d: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("SUT request failed: %s", e.Reason)
}

func (e *TransportError) Unwrap() error { return e.Err }

// EmptyResponseError reports a 2xx response with no body. It is kept
// distinct from TransportError because it signals a misconfigured SUT
// rather than a network failure.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "SUT returned an empty response body"
}

// MalformedJSONError reports a response body that was present but not
// parseable as JSON where structured data was required. Excerpt carries a
// truncated copy of the raw body for diagnosis.
type MalformedJSONError struct {
	Excerpt string
	Err     error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("SUT response is not valid JSON (body starts with %q)", e.Excerpt)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }
