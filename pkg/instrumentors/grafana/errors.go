package grafana

import (
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// notFoundError is returned when an AlertRuleParams/AlertGroupParams
// names a rule or group absent from Grafana by the time Instrument
// runs against it.
type notFoundError struct {
	Kind instrumentor.Kind
	Name string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

type paramsTypeError struct {
	Want string
	Got  instrumentor.Params
}

func (e *paramsTypeError) Error() string {
	return fmt.Sprintf("expected %s params, got %s", e.Want, e.Got.Describe())
}

func expectParams[T instrumentor.Params](params instrumentor.Params) (T, error) {
	p, ok := params.(T)
	if !ok {
		var zero T
		return zero, &paramsTypeError{Want: fmt.Sprintf("%T", zero), Got: params}
	}
	return p, nil
}
