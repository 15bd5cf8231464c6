package api

import "fmt"

// FetchError is the failure of a single Stats API operation: transport
// error, non-2xx status, or undecodable body. Callers are expected to
// surface it, not retry.
type FetchError struct {
	Op     string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
