package k8sinstr

import (
	"context"
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// ClusterInstrumentor is the root of a Kubernetes scan: it enumerates
// every instrumentable top-level kind in the configured namespace and
// instruments each object through the registry, containing per-object
// failures instead of aborting the scan.
type ClusterInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *ClusterInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindCluster, Instrumentor: i}}
}

func (i *ClusterInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ClusterParams](params)
	if err != nil {
		return nil, err
	}

	var children []alpacalert.Scanner
	for _, kind := range topLevelKinds {
		names, namespace, err := i.listNames(ctx, kind, p.Namespace)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			scanners, err := registry.Instrument(ctx, kind, ObjectParams{Namespace: namespace, Name: name})
			if err != nil {
				children = append(children, unknownSensor(kind, name, err))
				continue
			}
			children = append(children, scanners...)
		}
	}

	return []alpacalert.Scanner{alpacalert.NewAllOf("cluster "+p.Name, children)}, nil
}

// listNames resolves the object names belonging to kind in namespace,
// along with the namespace Instrument calls for that kind should use
// (k8sfacade.All for the cluster-scoped kinds, namespace otherwise).
func (i *ClusterInstrumentor) listNames(ctx context.Context, kind instrumentor.Kind, namespace string) (names []string, effectiveNamespace string, err error) {
	switch kind {
	case KindNode:
		nodes, err := i.Facade.Nodes(ctx)
		return namesOf(nodes), k8sfacade.All, err
	case KindConfigMap:
		objs, err := i.Facade.ConfigMaps(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindSecret:
		objs, err := i.Facade.Secrets(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindStorageClass:
		objs, err := i.Facade.StorageClasses(ctx)
		return namesOf(objs), k8sfacade.All, err
	case KindPersistentVolumeClaim:
		objs, err := i.Facade.PersistentVolumeClaims(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindPod:
		objs, err := i.Facade.Pods(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindReplicaSet:
		objs, err := i.Facade.ReplicaSets(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindDeployment:
		objs, err := i.Facade.Deployments(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindDaemonSet:
		objs, err := i.Facade.DaemonSets(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindStatefulSet:
		objs, err := i.Facade.StatefulSets(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindJob:
		objs, err := i.Facade.Jobs(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindCronJob:
		objs, err := i.Facade.CronJobs(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindService:
		objs, err := i.Facade.Services(ctx, namespace)
		return namesOf(objs), namespace, err
	case KindIngress:
		objs, err := i.Facade.Ingresses(ctx, namespace)
		return namesOf(objs), namespace, err
	default:
		return nil, namespace, fmt.Errorf("cluster instrumentor has no lister for kind %s", kind)
	}
}

type named interface{ GetName() string }

func namesOf[T named](objs []T) []string {
	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = o.GetName()
	}
	return names
}

func unknownSensor(kind instrumentor.Kind, name string, cause error) alpacalert.Scanner {
	return alpacalert.NewConstantSensor(fmt.Sprintf("%s %s", kind.Name, name), alpacalert.Status{
		State: alpacalert.Unknown,
		Messages: []alpacalert.Log{{
			Message:  fmt.Sprintf("failed to instrument %s %q: %v", kind, name, cause),
			Severity: alpacalert.SeverityError,
		}},
	})
}
