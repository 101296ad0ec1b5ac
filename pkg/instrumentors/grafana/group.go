package grafana

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// GroupInstrumentor instruments every rule in a named alert group as
// an AllOf: the group is healthy only if every one of its rules is.
type GroupInstrumentor struct {
	Client *Client
}

func (i *GroupInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindAlertGroup, Instrumentor: i}}
}

func (i *GroupInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[AlertGroupParams](params)
	if err != nil {
		return nil, err
	}

	group, ok, err := i.Client.Group(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindAlertGroup, Name: p.Name}
	}

	var children []alpacalert.Scanner
	for _, rule := range group.Rules {
		scanners, err := registry.Instrument(ctx, KindAlertRule, AlertRuleParams{Group: group.Name, Name: rule.Name})
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}

	return []alpacalert.Scanner{alpacalert.NewAllOf("alertgroup "+group.Name, children)}, nil
}
