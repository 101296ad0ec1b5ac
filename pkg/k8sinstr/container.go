package k8sinstr

import (
	"context"

	corev1 "k8s.io/api/core/v1"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// ContainerInstrumentor evaluates a single container's runtime state.
type ContainerInstrumentor struct{}

func (i *ContainerInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindPodContainer, Instrumentor: i}}
}

func (i *ContainerInstrumentor) Instrument(_ context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ContainerParams](params)
	if err != nil {
		return nil, err
	}
	return []alpacalert.Scanner{alpacalert.NewConstantSensor(p.Status.Name, containerStatus(p.Status))}, nil
}

func containerStatus(cs corev1.ContainerStatus) alpacalert.Status {
	switch {
	case cs.State.Running != nil:
		state := alpacalert.BoolState(cs.Ready && cs.Started != nil && *cs.Started)
		return alpacalert.Status{State: state, Messages: []alpacalert.Log{{Message: "running", Severity: alpacalert.SeverityInfo}}}

	case cs.State.Terminated != nil:
		started := cs.Started != nil && *cs.Started
		completed := cs.State.Terminated.Reason == "Completed"
		state := alpacalert.BoolState(!cs.Ready && !started && completed)
		return alpacalert.Status{State: state, Messages: []alpacalert.Log{{Message: "terminated", Severity: alpacalert.SeverityError}}}

	case cs.State.Waiting != nil:
		message := cs.State.Waiting.Reason
		severity := alpacalert.SeverityInfo
		if message == "" {
			message = "waiting"
		} else if message == "ImagePullBackOff" {
			severity = alpacalert.SeverityError
		}
		return alpacalert.Status{State: alpacalert.Failing, Messages: []alpacalert.Log{{Message: message, Severity: severity}}}

	default:
		return alpacalert.Status{State: alpacalert.Unknown, Messages: []alpacalert.Log{{Message: "unknown state", Severity: alpacalert.SeverityInfo}}}
	}
}
