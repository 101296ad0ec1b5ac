package k8sinstr

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// replicaField names one status field checked against a target value,
// the building block of every replica-count System in this file.
type replicaField struct {
	Name   string
	Target int32
	Actual int32
}

func replicaCountSystem(fields []replicaField, extra ...alpacalert.Scanner) alpacalert.Scanner {
	children := make([]alpacalert.Scanner, 0, len(fields)+len(extra))
	for _, f := range fields {
		children = append(children, alpacalert.NewConstantSensor(f.Name, alpacalert.Status{State: alpacalert.BoolState(f.Actual == f.Target)}))
	}
	children = append(children, extra...)
	return alpacalert.NewAllOf("replicas", children)
}

func int32Value(p *int32, fallback int32) int32 {
	if p == nil {
		return fallback
	}
	return *p
}

func podsSystemBySelector(ctx context.Context, facade *k8sfacade.Facade, registry *instrumentor.Registry, namespace string, selector map[string]string) (alpacalert.Scanner, error) {
	pods, err := facade.PodsBySelector(ctx, namespace, selector)
	if err != nil {
		return nil, err
	}
	var children []alpacalert.Scanner
	for _, pod := range pods {
		scanners, err := registry.Instrument(ctx, KindPod, ObjectParams{Namespace: pod.Namespace, Name: pod.Name})
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}
	return alpacalert.NewAllOf("pods", children), nil
}

func replicaSetsSystemBySelector(ctx context.Context, facade *k8sfacade.Facade, registry *instrumentor.Registry, namespace string, selector map[string]string) (alpacalert.Scanner, error) {
	replicaSets, err := facade.ReplicaSetsBySelector(ctx, namespace, selector)
	if err != nil {
		return nil, err
	}
	var children []alpacalert.Scanner
	for _, rs := range replicaSets {
		scanners, err := registry.Instrument(ctx, KindReplicaSet, ObjectParams{Namespace: rs.Namespace, Name: rs.Name})
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}
	return alpacalert.NewAllOf("replicasets", children), nil
}

// ReplicaSetInstrumentor instruments a ReplicaSet's replica counts and
// the Pods it controls.
type ReplicaSetInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *ReplicaSetInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindReplicaSet, Instrumentor: i}}
}

func (i *ReplicaSetInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	rs, ok, err := firstMatch(ctx, i.Facade.ReplicaSets, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindReplicaSet, Name: p.Name}
	}

	target := int32Value(rs.Spec.Replicas, 0)

	var replicas alpacalert.Scanner
	var pods alpacalert.Scanner
	if target == 0 {
		replicas = replicaCountSystem([]replicaField{{Name: "replicas", Target: target, Actual: rs.Status.Replicas}})
		pods = alpacalert.PassingSensor("pods", alpacalert.Log{Message: "requests no pods", Severity: alpacalert.SeverityInfo})
	} else {
		replicas = replicaCountSystem([]replicaField{
			{Name: "replicas", Target: target, Actual: rs.Status.Replicas},
			{Name: "availableReplicas", Target: target, Actual: rs.Status.AvailableReplicas},
			{Name: "readyReplicas", Target: target, Actual: rs.Status.ReadyReplicas},
		})
		selector := matchLabelsOf(rs.Spec.Selector)
		pods, err = podsSystemBySelector(ctx, i.Facade, registry, rs.Namespace, selector)
		if err != nil {
			return nil, err
		}
	}

	return []alpacalert.Scanner{alpacalert.NewAllOf("replicaset "+rs.Name, []alpacalert.Scanner{replicas, pods})}, nil
}

// DeploymentInstrumentor instruments a Deployment's replica counts,
// rollout conditions and the ReplicaSets it controls.
type DeploymentInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *DeploymentInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindDeployment, Instrumentor: i}}
}

var deploymentPassingIfTrue = toSet("Progressing", "Available")

func (i *DeploymentInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	d, ok, err := firstMatch(ctx, i.Facade.Deployments, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindDeployment, Name: p.Name}
	}

	target := int32Value(d.Spec.Replicas, 1)
	replicas := replicaCountSystem([]replicaField{
		{Name: "replicas", Target: target, Actual: d.Status.Replicas},
		{Name: "availableReplicas", Target: target, Actual: d.Status.AvailableReplicas},
		{Name: "readyReplicas", Target: target, Actual: d.Status.ReadyReplicas},
		{Name: "updatedReplicas", Target: target, Actual: d.Status.UpdatedReplicas},
	})

	conds := make([]condition, len(d.Status.Conditions))
	for j, c := range d.Status.Conditions {
		conds[j] = condition{Type: string(c.Type), Status: string(c.Status), Message: c.Message, Reason: c.Reason}
	}
	conditionChildren := conditionSensors(conds, deploymentPassingIfTrue, nil)

	selector := matchLabelsOf(d.Spec.Selector)
	replicaSets, err := replicaSetsSystemBySelector(ctx, i.Facade, registry, d.Namespace, selector)
	if err != nil {
		return nil, err
	}

	children := append([]alpacalert.Scanner{replicas}, conditionChildren...)
	children = append(children, replicaSets)
	return []alpacalert.Scanner{alpacalert.NewAllOf("deployment "+d.Name, children)}, nil
}

// DaemonSetInstrumentor instruments a DaemonSet's scheduling counts and
// the Pods it controls.
type DaemonSetInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *DaemonSetInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindDaemonSet, Instrumentor: i}}
}

func (i *DaemonSetInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	ds, ok, err := firstMatch(ctx, i.Facade.DaemonSets, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindDaemonSet, Name: p.Name}
	}

	target := ds.Status.DesiredNumberScheduled
	misscheduled := alpacalert.NewConstantSensor("numberMisscheduled", alpacalert.Status{State: alpacalert.BoolState(ds.Status.NumberMisscheduled == 0)})
	replicas := replicaCountSystem([]replicaField{
		{Name: "currentNumberScheduled", Target: target, Actual: ds.Status.CurrentNumberScheduled},
		{Name: "numberAvailable", Target: target, Actual: ds.Status.NumberAvailable},
		{Name: "numberReady", Target: target, Actual: ds.Status.NumberReady},
		{Name: "updatedNumberScheduled", Target: target, Actual: ds.Status.UpdatedNumberScheduled},
	}, misscheduled)

	selector := matchLabelsOf(ds.Spec.Selector)
	pods, err := podsSystemBySelector(ctx, i.Facade, registry, ds.Namespace, selector)
	if err != nil {
		return nil, err
	}

	return []alpacalert.Scanner{alpacalert.NewAllOf("daemonset "+ds.Name, []alpacalert.Scanner{replicas, pods})}, nil
}

// StatefulSetInstrumentor instruments a StatefulSet's replica counts and
// the Pods it controls.
type StatefulSetInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *StatefulSetInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindStatefulSet, Instrumentor: i}}
}

func (i *StatefulSetInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	ss, ok, err := firstMatch(ctx, i.Facade.StatefulSets, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindStatefulSet, Name: p.Name}
	}

	target := int32Value(ss.Spec.Replicas, 1)
	collisionCount := int32Value(ss.Status.CollisionCount, 0)
	collision := alpacalert.NewConstantSensor("collisionCount", alpacalert.Status{State: alpacalert.BoolState(collisionCount == 0)})
	replicas := replicaCountSystem([]replicaField{
		{Name: "availableReplicas", Target: target, Actual: ss.Status.AvailableReplicas},
		{Name: "currentReplicas", Target: target, Actual: ss.Status.CurrentReplicas},
		{Name: "replicas", Target: target, Actual: ss.Status.Replicas},
		{Name: "updatedReplicas", Target: target, Actual: ss.Status.UpdatedReplicas},
	}, collision)

	selector := matchLabelsOf(ss.Spec.Selector)
	pods, err := podsSystemBySelector(ctx, i.Facade, registry, ss.Namespace, selector)
	if err != nil {
		return nil, err
	}

	return []alpacalert.Scanner{alpacalert.NewAllOf("statefulset "+ss.Name, []alpacalert.Scanner{replicas, pods})}, nil
}
