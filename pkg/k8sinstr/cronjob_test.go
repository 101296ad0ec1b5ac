package k8sinstr_test

import (
	"context"
	"testing"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/lilatomic/alpacalert/pkg/k8sinstr"
	"github.com/lilatomic/alpacalert/pkg/query"
)

// TestCronJobOwnerChain is scenario S6: discovery of Jobs under a
// CronJob uses ownerReferences, not a label selector.
func TestCronJobOwnerChain(t *testing.T) {
	cronJob := &batchv1.CronJob{
		ObjectMeta: metav1.ObjectMeta{Name: "hello", Namespace: "ns", UID: "cj-uid"},
	}
	job := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name: "hello-28991200", Namespace: "ns",
			OwnerReferences: []metav1.OwnerReference{{
				APIVersion: "batch/v1", Kind: "CronJob", Name: "hello", UID: "cj-uid",
			}},
		},
		Status: batchv1.JobStatus{
			Conditions: []batchv1.JobCondition{{Type: batchv1.JobComplete, Status: corev1.ConditionTrue}},
		},
	}
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name: "hello-28991200-abcde", Namespace: "ns",
			Labels: map[string]string{"job-name": "hello-28991200"},
		},
		Status: corev1.PodStatus{Phase: corev1.PodSucceeded},
	}
	job.Spec.Selector = &metav1.LabelSelector{MatchLabels: map[string]string{"job-name": "hello-28991200"}}

	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).
		WithObjects(cronJob, job, pod))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindCronJob,
		k8sinstr.ObjectParams{Namespace: "ns", Name: "hello"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}

	found, err := query.FindByPath(scanners, []string{"cronjob hello", "jobs", "*", "pods", "*"})
	if err != nil {
		t.Fatalf("FindByPath() error = %v", err)
	}
	if len(found) == 0 {
		t.Fatal("FindByPath() found no pod scanners under the CronJob's owned Jobs")
	}
}
