package api

import "fmt"

// NetworkError wraps a transport-level failure: connection refused, DNS,
// timeout. The request never produced an HTTP status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-success HTTP response. Message carries the body's
// "message" field when the server sent one, else a generic "HTTP <status>".
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}
