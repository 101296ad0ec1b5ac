package k8sinstr

import (
	"context"

	corev1 "k8s.io/api/core/v1"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

var (
	nodePassingIfTrue  = toSet("Ready")
	nodePassingIfFalse = toSet("MemoryPressure", "DiskPressure", "PIDPressure")
)

// NodeInstrumentor instruments cluster Nodes by their status conditions.
type NodeInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *NodeInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindNode, Instrumentor: i}}
}

func (i *NodeInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	nodes, err := i.Facade.Nodes(ctx)
	if err != nil {
		return nil, err
	}

	for _, node := range nodes {
		if node.Name == p.Name {
			return []alpacalert.Scanner{instrumentNode(node)}, nil
		}
	}
	return nil, &notFoundError{Kind: KindNode, Name: p.Name}
}

func instrumentNode(node *corev1.Node) alpacalert.Scanner {
	conds := make([]condition, len(node.Status.Conditions))
	for j, c := range node.Status.Conditions {
		conds[j] = condition{Type: string(c.Type), Status: string(c.Status), Message: c.Message, Reason: c.Reason}
	}
	sensors := conditionSensors(conds, nodePassingIfTrue, nodePassingIfFalse)
	return alpacalert.NewAllOf("node "+node.Name, sensors)
}
