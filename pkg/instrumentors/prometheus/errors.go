package prometheus

import (
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

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
