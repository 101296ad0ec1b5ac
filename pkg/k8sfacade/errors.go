package k8sfacade

import "fmt"

// APIError wraps a failure from the underlying Kubernetes client.
type APIError struct {
	Op    string
	Cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kubernetes api error during %s: %v", e.Op, e.Cause)
}

func (e *APIError) Unwrap() error { return e.Cause }
