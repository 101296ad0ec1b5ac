package k8sinstr

import (
	"context"
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// IngressInstrumentor instruments an Ingress by emitting one Path child
// per rule x path entry.
type IngressInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *IngressInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindIngress, Instrumentor: i}}
}

func (i *IngressInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	ing, ok, err := firstMatch(ctx, i.Facade.Ingresses, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindIngress, Name: p.Name}
	}

	var children []alpacalert.Scanner
	for ruleIdx, rule := range ing.Spec.Rules {
		if rule.HTTP == nil {
			continue
		}
		for pathIdx, path := range rule.HTTP.Paths {
			scanners, err := registry.Instrument(ctx, KindIngressPath, IngressPathParams{
				Namespace: ing.Namespace,
				RuleIndex: ruleIdx,
				PathIndex: pathIdx,
				Path:      path,
			})
			if err != nil {
				return nil, err
			}
			children = append(children, scanners...)
		}
	}

	return []alpacalert.Scanner{alpacalert.NewAllOf("ingress "+ing.Name, children)}, nil
}

// IngressPathInstrumentor instruments a single rule/path entry of an
// Ingress, resolving its backend.
type IngressPathInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *IngressPathInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindIngressPath, Instrumentor: i}}
}

func (i *IngressPathInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[IngressPathParams](params)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("path %d:%d %s", p.RuleIndex, p.PathIndex, p.Path.Path)
	return i.instrumentBackend(ctx, registry, name, p)
}

func (i *IngressPathInstrumentor) instrumentBackend(ctx context.Context, registry *instrumentor.Registry, name string, p IngressPathParams) ([]alpacalert.Scanner, error) {
	backend := p.Path.Backend

	switch {
	case backend.Service != nil:
		_, ok, err := i.Facade.Service(ctx, p.Namespace, backend.Service.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []alpacalert.Scanner{alpacalert.FailingSensor(name,
				alpacalert.Log{Message: fmt.Sprintf("service %s exist", backend.Service.Name), Severity: alpacalert.SeverityError})}, nil
		}

		scanners, err := registry.Instrument(ctx, KindService, ObjectParams{Namespace: p.Namespace, Name: backend.Service.Name})
		if err != nil {
			return nil, err
		}
		return []alpacalert.Scanner{alpacalert.NewAllOf(name, scanners)}, nil

	case backend.Resource != nil:
		return []alpacalert.Scanner{alpacalert.PassingSensor(name)}, nil

	default:
		return []alpacalert.Scanner{alpacalert.PassingSensor(name,
			alpacalert.Log{Message: "cannot be instrumented", Severity: alpacalert.SeverityInfo})}, nil
	}
}
