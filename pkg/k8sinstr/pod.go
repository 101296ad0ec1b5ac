package k8sinstr

import (
	"context"

	corev1 "k8s.io/api/core/v1"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
)

// PodInstrumentor instruments a Pod's phase, conditions, containers and
// volumes.
type PodInstrumentor struct {
	Facade *k8sfacade.Facade
}

func (i *PodInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindPod, Instrumentor: i}}
}

func (i *PodInstrumentor) Instrument(ctx context.Context, registry *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[ObjectParams](params)
	if err != nil {
		return nil, err
	}

	pod, ok, err := i.Facade.Pod(ctx, p.Namespace, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindPod, Name: p.Name}
	}

	phaseSensor, passingIfTrue, passingIfFalse := podPhaseShape(pod.Status.Phase)

	conds := make([]condition, len(pod.Status.Conditions))
	for j, c := range pod.Status.Conditions {
		conds[j] = condition{Type: string(c.Type), Status: string(c.Status), Message: c.Message, Reason: c.Reason}
	}

	children := []alpacalert.Scanner{phaseSensor}
	children = append(children, conditionSensors(conds, passingIfTrue, passingIfFalse)...)

	containers, err := i.instrumentContainers(ctx, registry, pod)
	if err != nil {
		return nil, err
	}
	children = append(children, containers)

	volumes, err := i.instrumentVolumes(ctx, registry, pod)
	if err != nil {
		return nil, err
	}
	children = append(children, volumes)

	return []alpacalert.Scanner{alpacalert.NewAllOf("pod "+pod.Name, children)}, nil
}

func podPhaseShape(phase corev1.PodPhase) (phaseSensor alpacalert.Scanner, passingIfTrue, passingIfFalse map[string]bool) {
	switch phase {
	case corev1.PodPending:
		return alpacalert.NewConstantSensor("phase", alpacalert.Status{State: alpacalert.Unknown}),
			toSet("PodScheduled"), nil

	case corev1.PodRunning:
		return alpacalert.PassingSensor("phase"),
			toSet("Initialized", "Ready", "ContainersReady", "PodScheduled"), nil

	case corev1.PodSucceeded:
		return alpacalert.PassingSensor("phase"),
			toSet("Initialized", "PodScheduled"), toSet("Ready", "ContainersReady")

	case corev1.PodFailed:
		return alpacalert.FailingSensor("phase"),
			toSet("Initialized", "Ready", "ContainersReady", "PodScheduled"), nil

	default:
		return alpacalert.NewConstantSensor("phase", alpacalert.Status{State: alpacalert.Unknown}), nil, nil
	}
}

func (i *PodInstrumentor) instrumentContainers(ctx context.Context, registry *instrumentor.Registry, pod *corev1.Pod) (alpacalert.Scanner, error) {
	var children []alpacalert.Scanner
	for _, cs := range pod.Status.ContainerStatuses {
		scanners, err := registry.Instrument(ctx, KindPodContainer, ContainerParams{Namespace: pod.Namespace, PodName: pod.Name, Status: cs})
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}
	return alpacalert.NewAllOf("containers", children), nil
}

func (i *PodInstrumentor) instrumentVolumes(ctx context.Context, registry *instrumentor.Registry, pod *corev1.Pod) (alpacalert.Scanner, error) {
	var children []alpacalert.Scanner
	for _, v := range pod.Spec.Volumes {
		scanners, err := registry.Instrument(ctx, KindPodVolume, VolumeParams{Namespace: pod.Namespace, PodName: pod.Name, Volume: v})
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}
	return alpacalert.NewAllOf("volumes", children), nil
}
