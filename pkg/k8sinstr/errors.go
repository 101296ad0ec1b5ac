package k8sinstr

import (
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// notFoundError is returned when an ObjectParams names an object absent
// from the cluster by the time Instrument runs against it.
type notFoundError struct {
	Kind instrumentor.Kind
	Name string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// paramsTypeError is returned when an Instrumentor receives Params of a
// concrete type it does not expect, e.g. a Pod instrumentor invoked with
// ContainerParams.
type paramsTypeError struct {
	Want string
	Got  instrumentor.Params
}

func (e *paramsTypeError) Error() string {
	return fmt.Sprintf("expected %s params, got %s", e.Want, e.Got.Describe())
}

// expectParams asserts params is of concrete type T, the pattern every
// Instrumentor in this package uses to recover its kind-specific
// payload from the Params marker interface.
func expectParams[T instrumentor.Params](params instrumentor.Params) (T, error) {
	p, ok := params.(T)
	if !ok {
		var zero T
		return zero, &paramsTypeError{Want: fmt.Sprintf("%T", zero), Got: params}
	}
	return p, nil
}
