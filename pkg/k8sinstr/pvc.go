package k8sinstr

import (
	"context"

	corev1 "k8s.io/api/core/v1"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// PersistentVolumeClaimInstrumentor instruments a PVC's phase and the
// existence of its StorageClass.
type PersistentVolumeClaimInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *PersistentVolumeClaimInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindPersistentVolumeClaim, Instrumentor: i}}
}

func (i *PersistentVolumeClaimInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	pvc, ok, err := i.Facade.PersistentVolumeClaim(ctx, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindPersistentVolumeClaim, Name: p.Name}
	}

	phaseSensor := alpacalert.NewConstantSensor("phase", pvcPhaseStatus(pvc.Status.Phase))

	var storageClassChildren []alpacalert.Scanner
	if pvc.Spec.StorageClassName != nil && *pvc.Spec.StorageClassName != "" {
		ok, err := i.Facade.StorageClassExists(ctx, *pvc.Spec.StorageClassName)
		if err != nil {
			return nil, err
		}
		storageClassChildren = append(storageClassChildren, alpacalert.NewConstantSensor(
			existenceSensorName("storageclass", *pvc.Spec.StorageClassName),
			alpacalert.Status{State: alpacalert.BoolState(ok)},
		))
	}

	children := append([]alpacalert.Scanner{phaseSensor}, storageClassChildren...)
	return []alpacalert.Scanner{alpacalert.NewAllOf("persistentvolumeclaim "+pvc.Name, children)}, nil
}

func pvcPhaseStatus(phase corev1.PersistentVolumeClaimPhase) alpacalert.Status {
	switch phase {
	case corev1.ClaimBound:
		return alpacalert.Status{State: alpacalert.Passing}
	case corev1.ClaimPending:
		return alpacalert.Status{State: alpacalert.Failing}
	default:
		return alpacalert.Status{State: alpacalert.Failing, Messages: []alpacalert.Log{
			{Message: "unexpected phase " + string(phase), Severity: alpacalert.SeverityWarn},
		}}
	}
}
