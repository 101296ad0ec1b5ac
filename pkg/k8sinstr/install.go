package k8sinstr

import (
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// Install binds every Kubernetes Instrumentor in this package into
// registry, backed by facade.
func Install(registry *instrumentor.Registry, facade *k8sfacade.Facade) {
	registry.Install(&ClusterInstrumentor{Facade: facade})
	registry.Install(&NodeInstrumentor{Facade: facade})
	registry.Install(&ConfigMapInstrumentor{Facade: facade})
	registry.Install(&SecretInstrumentor{Facade: facade})
	registry.Install(&StorageClassInstrumentor{Facade: facade})
	registry.Install(&PersistentVolumeClaimInstrumentor{Facade: facade})
	registry.Install(&PodInstrumentor{Facade: facade})
	registry.Install(&ContainerInstrumentor{})
	registry.Install(&VolumeInstrumentor{Facade: facade})
	registry.Install(&ReplicaSetInstrumentor{Facade: facade})
	registry.Install(&DeploymentInstrumentor{Facade: facade})
	registry.Install(&DaemonSetInstrumentor{Facade: facade})
	registry.Install(&StatefulSetInstrumentor{Facade: facade})
	registry.Install(&JobInstrumentor{Facade: facade})
	registry.Install(&CronJobInstrumentor{Facade: facade})
	registry.Install(&ServiceInstrumentor{Facade: facade})
	registry.Install(&IngressInstrumentor{Facade: facade})
	registry.Install(&IngressPathInstrumentor{Facade: facade})
}
