package k8sinstr

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// ServiceInstrumentor instruments a Service as healthy when at least one
// backing Pod is healthy; a Service without a selector is assumed
// externally managed and reported PASSING.
type ServiceInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *ServiceInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindService, Instrumentor: i}}
}

func (i *ServiceInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	svc, ok, err := i.Facade.Service(ctx, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindService, Name: p.Name}
	}

	if len(svc.Spec.Selector) == 0 {
		return []alpacalert.Scanner{alpacalert.PassingSensor("service "+svc.Name,
			alpacalert.Log{Message: "Service does not use selectors", Severity: alpacalert.SeverityInfo})}, nil
	}

	pods, err := i.Facade.PodsBySelector(ctx, svc.Namespace, svc.Spec.Selector)
	if err != nil {
		return nil, err
	}
	var podScanners []alpacalert.Scanner
	for _, pod := range pods {
		scanners, err := registry.Instrument(ctx, KindPod, ObjectParams{Namespace: pod.Namespace, Name: pod.Name})
		if err != nil {
			return nil, err
		}
		podScanners = append(podScanners, scanners...)
	}

	endpoints := alpacalert.NewAnyOf("endpoints", podScanners)
	return []alpacalert.Scanner{alpacalert.NewAllOf("service "+svc.Name, []alpacalert.Scanner{endpoints})}, nil
}
