package k8sinstr

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// CronJobInstrumentor instruments the Jobs a CronJob owns, resolved by
// ownerReference rather than a label selector: CronJob spawns Jobs
// without the label-equality the selector mechanism requires.
type CronJobInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *CronJobInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindCronJob, Instrumentor: i}}
}

func (i *CronJobInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	cronJob, ok, err := firstMatch(ctx, i.Facade.CronJobs, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindCronJob, Name: p.Name}
	}

	jobs, err := i.Facade.JobsOwnedBy(ctx, cronJob.Namespace, cronJob)
	if err != nil {
		return nil, err
	}

	var children []alpacalert.Scanner
	for _, job := range jobs {
		scanners, err := registry.Instrument(ctx, KindJob, ObjectParams{Namespace: job.Namespace, Name: job.Name})
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}

	jobsSystem := alpacalert.NewAllOf("jobs", children)
	return []alpacalert.Scanner{alpacalert.NewAllOf("cronjob "+cronJob.Name, []alpacalert.Scanner{jobsSystem})}, nil
}
