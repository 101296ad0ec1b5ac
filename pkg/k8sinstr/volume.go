package k8sinstr

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// VolumeInstrumentor evaluates a single pod volume, dispatching on its
// source type.
type VolumeInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *VolumeInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindPodVolume, Instrumentor: i}}
}

func (i *VolumeInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[VolumeParams](params)
	if err != nil {
		return nil, err
	}
	scanner, err := i.instrumentSource(ctx, registry, p.Namespace, p.PodName, p.Volume.Name, p.Volume.VolumeSource)
	if err != nil {
		return nil, err
	}
	return []alpacalert.Scanner{scanner}, nil
}

func (i *VolumeInstrumentor) instrumentSource(ctx context.Context, registry *instrumentor.Registry, namespace, podName, name string, src corev1.VolumeSource) (alpacalert.Scanner, error) {
	switch {
	case src.ConfigMap != nil:
		ok, err := i.Facade.ConfigMapExists(ctx, namespace, src.ConfigMap.Name)
		if err != nil {
			return nil, err
		}
		return alpacalert.NewAllOf(name, []alpacalert.Scanner{
			alpacalert.NewConstantSensor(existenceSensorName("configmap", src.ConfigMap.Name), alpacalert.Status{State: alpacalert.BoolState(ok)}),
		}), nil

	case src.HostPath != nil:
		return alpacalert.PassingSensor(name), nil

	case src.Projected != nil:
		children := make([]alpacalert.Scanner, len(src.Projected.Sources))
		for idx, source := range src.Projected.Sources {
			child, err := i.instrumentSource(ctx, registry, namespace, podName, fmt.Sprintf("%s[%d]", name, idx), projectionToVolumeSource(source))
			if err != nil {
				return nil, err
			}
			children[idx] = child
		}
		return alpacalert.NewAllOf(name, children), nil

	case src.DownwardAPI != nil:
		return alpacalert.PassingSensor(name), nil

	case src.ServiceAccountToken != nil:
		return alpacalert.PassingSensor(name), nil

	case src.PersistentVolumeClaim != nil:
		scanners, err := registry.Instrument(ctx, KindPersistentVolumeClaim, ObjectParams{Namespace: namespace, Name: src.PersistentVolumeClaim.ClaimName})
		if err != nil {
			return nil, err
		}
		return alpacalert.NewAllOf(name, scanners), nil

	default:
		return alpacalert.PassingSensor(name, alpacalert.Log{Message: "cannot be instrumented", Severity: alpacalert.SeverityInfo}), nil
	}
}

// projectionToVolumeSource adapts a projected-volume source entry onto
// the same VolumeSource shape instrumentSource dispatches on, so a
// projected source can recurse through the identical category table
// instead of a parallel one.
func projectionToVolumeSource(p corev1.VolumeProjection) corev1.VolumeSource {
	switch {
	case p.ConfigMap != nil:
		return corev1.VolumeSource{ConfigMap: &corev1.ConfigMapVolumeSource{LocalObjectReference: p.ConfigMap.LocalObjectReference}}
	case p.DownwardAPI != nil:
		return corev1.VolumeSource{DownwardAPI: &corev1.DownwardAPIVolumeSource{}}
	case p.ServiceAccountToken != nil:
		return corev1.VolumeSource{ServiceAccountToken: &corev1.ServiceAccountTokenProjection{}}
	default:
		return corev1.VolumeSource{}
	}
}
