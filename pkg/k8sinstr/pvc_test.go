package k8sinstr_test

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	storagev1 "k8s.io/api/storage/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/stretchr/testify/require"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/k8sinstr"
)

func TestPVCBoundWithStorageClass(t *testing.T) {
	sc := &storagev1.StorageClass{ObjectMeta: metav1.ObjectMeta{Name: "standard"}}
	storageClassName := "standard"
	pvc := &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{Name: "data", Namespace: "ns"},
		Spec:       corev1.PersistentVolumeClaimSpec{StorageClassName: &storageClassName},
		Status:     corev1.PersistentVolumeClaimStatus{Phase: corev1.ClaimBound},
	}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(pvc, sc))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindPersistentVolumeClaim, k8sinstr.ObjectParams{Namespace: "ns", Name: "data"})
	require.NoError(t, err)
	require.Equal(t, alpacalert.Passing, scanners[0].Status().State)

	phase := findChild(t, scanners[0], "phase")
	require.Equal(t, alpacalert.Passing, phase.Status().State)

	scLeaf := findChild(t, scanners[0], "storageclass standard exists")
	require.Equal(t, alpacalert.Passing, scLeaf.Status().State)
}

func TestPVCPendingIsFailing(t *testing.T) {
	pvc := &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{Name: "data", Namespace: "ns"},
		Status:     corev1.PersistentVolumeClaimStatus{Phase: corev1.ClaimPending},
	}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(pvc))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindPersistentVolumeClaim, k8sinstr.ObjectParams{Namespace: "ns", Name: "data"})
	require.NoError(t, err)
	require.Equal(t, alpacalert.Failing, scanners[0].Status().State)
}

func TestPVCMissingStorageClassFails(t *testing.T) {
	storageClassName := "nonexistent"
	pvc := &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{Name: "data", Namespace: "ns"},
		Spec:       corev1.PersistentVolumeClaimSpec{StorageClassName: &storageClassName},
		Status:     corev1.PersistentVolumeClaimStatus{Phase: corev1.ClaimBound},
	}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(pvc))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindPersistentVolumeClaim, k8sinstr.ObjectParams{Namespace: "ns", Name: "data"})
	require.NoError(t, err)

	scLeaf := findChild(t, scanners[0], "storageclass nonexistent exists")
	require.Equal(t, alpacalert.Failing, scLeaf.Status().State)
}
