package k8sinstr

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

var jobPassingIfTrue = toSet("Complete")

// JobInstrumentor instruments a Job's completion condition and the Pods
// it ran.
type JobInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *JobInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindJob, Instrumentor: i}}
}

func (i *JobInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	job, ok, err := firstMatch(ctx, i.Facade.Jobs, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindJob, Name: p.Name}
	}

	conds := make([]condition, len(job.Status.Conditions))
	for j, c := range job.Status.Conditions {
		conds[j] = condition{Type: string(c.Type), Status: string(c.Status), Message: c.Message, Reason: c.Reason}
	}
	children := conditionSensors(conds, jobPassingIfTrue, nil)

	selector := matchLabelsOf(job.Spec.Selector)
	pods, err := i.Facade.PodsBySelector(ctx, job.Namespace, selector)
	if err != nil {
		return nil, err
	}

	var podsSensor alpacalert.Scanner
	if len(pods) == 0 {
		podsSensor = alpacalert.PassingSensor("pods", alpacalert.Log{Message: "No pods found", Severity: alpacalert.SeverityInfo})
	} else {
		var podScanners []alpacalert.Scanner
		for _, pod := range pods {
			scanners, err := registry.Instrument(ctx, KindPod, ObjectParams{Namespace: pod.Namespace, Name: pod.Name})
			if err != nil {
				return nil, err
			}
			podScanners = append(podScanners, scanners...)
		}
		podsSensor = alpacalert.NewAllOf("pods", podScanners)
	}
	children = append(children, podsSensor)

	return []alpacalert.Scanner{alpacalert.NewAllOf("job "+job.Name, children)}, nil
}
