package k8sinstr_test

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/k8sinstr"
)

func TestServiceWithoutSelectorIsPassing(t *testing.T) {
	svc := &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "headless", Namespace: "ns"}}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(svc))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindService, k8sinstr.ObjectParams{Namespace: "ns", Name: "headless"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Passing {
		t.Errorf("state = %v, want Passing", got)
	}
}

func TestServiceHealthyWithOneGoodBackingPod(t *testing.T) {
	labels := map[string]string{"app": "web"}
	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "ns"},
		Spec:       corev1.ServiceSpec{Selector: labels},
	}
	healthyPod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "ns", Labels: labels},
		Status:     corev1.PodStatus{Phase: corev1.PodRunning},
	}
	unhealthyPod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "web-2", Namespace: "ns", Labels: labels},
		Status:     corev1.PodStatus{Phase: corev1.PodFailed},
	}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).
		WithObjects(svc, healthyPod, unhealthyPod))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindService, k8sinstr.ObjectParams{Namespace: "ns", Name: "web"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Passing {
		t.Errorf("state = %v, want Passing (AnyOf over one healthy, one unhealthy pod)", got)
	}
}
