package judge

import "fmt"

// TransportError reports a failed call to the judge service: network
// failure, non-2xx status, or an empty choice list.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("judge call failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a judge reply that could not be parsed or
// validated against the expected schema. Raw carries the full reply text
// for diagnosis; no lenient re-parse is attempted.
type ProtocolError struct {
	Reason string
	Raw    string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("judge reply does not match the expected schema: %s", e.Reason)
}
