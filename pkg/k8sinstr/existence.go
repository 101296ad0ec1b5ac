package k8sinstr

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// existenceCheck reports whether a named object exists, and is the
// shared shape behind the ConfigMap, Secret and StorageClass
// instrumentors.
type existenceCheck func(ctx context.Context, namespace, name string) (bool, error)

func existenceSensor(ctx context.Context, kindLabel, namespace, name string, check existenceCheck) (alpacalert.Scanner, error) {
	ok, err := check(ctx, namespace, name)
	if err != nil {
		return nil, err
	}
	return alpacalert.NewConstantSensor(kindLabel+" "+name+" exists", alpacalert.Status{State: alpacalert.BoolState(ok)}), nil
}

// existenceSensorName is the leaf name existenceSensor gives its
// ConstantSensor, exposed so callers that build the same shape inline
// (the volume configMap case, the PVC storageClass check) stay
// consistent with it.
func existenceSensorName(kindLabel, name string) string {
	return kindLabel + " " + name + " exists"
}

// ConfigMapInstrumentor reports whether a named ConfigMap exists.
type ConfigMapInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *ConfigMapInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindConfigMap, Instrumentor: i}}
}

func (i *ConfigMapInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}
	s, err := existenceSensor(ctx, "configmap", p.Namespace, p.Name, i.Facade.ConfigMapExists)
	if err != nil {
		return nil, err
	}
	return []alpacalert.Scanner{s}, nil
}

// SecretInstrumentor reports whether a named Secret exists.
type SecretInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *SecretInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindSecret, Instrumentor: i}}
}

func (i *SecretInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}
	s, err := existenceSensor(ctx, "secret", p.Namespace, p.Name, i.Facade.SecretExists)
	if err != nil {
		return nil, err
	}
	return []alpacalert.Scanner{s}, nil
}

// StorageClassInstrumentor reports whether a named StorageClass exists.
// StorageClasses are cluster-scoped; Namespace on ObjectParams is
// ignored.
type StorageClassInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *StorageClassInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindStorageClass, Instrumentor: i}}
}

func (i *StorageClassInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}
	ok, err := i.Facade.StorageClassExists(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	return []alpacalert.Scanner{alpacalert.NewConstantSensor(existenceSensorName("storageclass", p.Name), alpacalert.Status{State: alpacalert.BoolState(ok)})}, nil
}
