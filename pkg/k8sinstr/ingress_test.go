package k8sinstr_test

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/k8sinstr"
)

func TestIngressPathMissingServiceFails(t *testing.T) {
	pathType := networkingv1.PathTypePrefix
	ing := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{Name: "ing1", Namespace: "ns"},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{{
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{
						Paths: []networkingv1.HTTPIngressPath{{
							Path:     "/",
							PathType: &pathType,
							Backend: networkingv1.IngressBackend{
								Service: &networkingv1.IngressServiceBackend{Name: "missing-service"},
							},
						}},
					},
				},
			}},
		},
	}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(ing))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindIngress, k8sinstr.ObjectParams{Namespace: "ns", Name: "ing1"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}

	path := findChild(t, scanners[0], "path 0:0 /")
	status := path.Status()
	if status.State != alpacalert.Failing {
		t.Errorf("state = %v, want Failing", status.State)
	}
	if len(status.Messages) != 1 || status.Messages[0].Message != "service missing-service exist" {
		t.Errorf("messages = %v, want [service missing-service exist]", status.Messages)
	}
}

func TestIngressPathResolvesExistingService(t *testing.T) {
	pathType := networkingv1.PathTypePrefix
	svc := &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "ns"}}
	ing := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{Name: "ing1", Namespace: "ns"},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{{
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{
						Paths: []networkingv1.HTTPIngressPath{{
							Path:     "/web",
							PathType: &pathType,
							Backend: networkingv1.IngressBackend{
								Service: &networkingv1.IngressServiceBackend{Name: "web"},
							},
						}},
					},
				},
			}},
		},
	}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(ing, svc))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindIngress, k8sinstr.ObjectParams{Namespace: "ns", Name: "ing1"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}

	path := findChild(t, scanners[0], "path 0:0 /web")
	if got := path.Status().State; got != alpacalert.Passing {
		t.Errorf("state = %v, want Passing (service has no selector => Passing)", got)
	}
}
