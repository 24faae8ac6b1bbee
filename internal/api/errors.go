package api

import "fmt"

// DefaultRejectMessage is used when the backend rejects a job without saying why
const DefaultRejectMessage = "An error occurred"

// RejectedError is returned when the backend answers a submission with a non-2xx status
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return DefaultRejectMessage
	}
	return e.Message
}

// NetworkError wraps failures to reach the backend or to decode its reply
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
