package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/api"
	prometheusv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// QueryInstrumentor evaluates a PromQL instant query as a boolean
// health check: PASSING iff the result vector is non-empty and every
// sample's value is non-zero, matching original_source's
// prometheus.py convention. A query error, or a warning returned
// alongside the result, reports UNKNOWN.
type QueryInstrumentor struct {
	API prometheusv1.API
}

// NewQueryInstrumentor builds a QueryInstrumentor talking to the
// Prometheus server at address.
func NewQueryInstrumentor(address string) (*QueryInstrumentor, error) {
	client, err := api.NewClient(api.Config{Address: address})
	if err != nil {
		return nil, errors.Wrap(err, "constructing prometheus client")
	}
	return &QueryInstrumentor{API: prometheusv1.NewAPI(client)}, nil
}

func (i *QueryInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindQuery, Instrumentor: i}}
}

func (i *QueryInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[QueryParams](params)
	if err != nil {
		return nil, err
	}

	result, warnings, err := i.API.Query(ctx, p.Query, time.Time{})
	if err != nil {
		return []alpacalert.Scanner{alpacalert.NewConstantSensor(p.Query, alpacalert.Status{
			State: alpacalert.Unknown,
			Messages: []alpacalert.Log{{
				Message:  fmt.Sprintf("query failed: %v", err),
				Severity: alpacalert.SeverityError,
			}},
		})}, nil
	}

	var messages []alpacalert.Log
	for _, w := range warnings {
		messages = append(messages, alpacalert.Log{Message: w, Severity: alpacalert.SeverityWarn})
	}
	if len(warnings) > 0 {
		return []alpacalert.Scanner{alpacalert.NewConstantSensor(p.Query, alpacalert.Status{State: alpacalert.Unknown, Messages: messages})}, nil
	}

	return []alpacalert.Scanner{alpacalert.NewConstantSensor(p.Query, alpacalert.Status{State: queryResultState(result), Messages: messages})}, nil
}

// queryResultState implements the boolean-query convention: PASSING
// iff the vector is non-empty and every sample is non-zero.
func queryResultState(result model.Value) alpacalert.State {
	vector, ok := result.(model.Vector)
	if !ok {
		return alpacalert.Unknown
	}
	if len(vector) == 0 {
		return alpacalert.Failing
	}
	for _, sample := range vector {
		if sample.Value == 0 {
			return alpacalert.Failing
		}
	}
	return alpacalert.Passing
}
