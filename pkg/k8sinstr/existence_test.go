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

func TestConfigMapExistsIsPassing(t *testing.T) {
	cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "kube-root-ca.crt", Namespace: "ns"}}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(cm))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindConfigMap, k8sinstr.ObjectParams{Namespace: "ns", Name: "kube-root-ca.crt"})
	require.NoError(t, err)
	require.Len(t, scanners, 1)
	require.Equal(t, "configmap kube-root-ca.crt exists", scanners[0].Name())
	require.Equal(t, alpacalert.Passing, scanners[0].Status().State)
}

func TestConfigMapMissingIsFailing(t *testing.T) {
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindConfigMap, k8sinstr.ObjectParams{Namespace: "ns", Name: "missing"})
	require.NoError(t, err)
	require.Equal(t, alpacalert.Failing, scanners[0].Status().State)
}

func TestSecretExists(t *testing.T) {
	secret := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "tls", Namespace: "ns"}}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(secret))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindSecret, k8sinstr.ObjectParams{Namespace: "ns", Name: "tls"})
	require.NoError(t, err)
	require.Equal(t, "secret tls exists", scanners[0].Name())
	require.Equal(t, alpacalert.Passing, scanners[0].Status().State)
}

func TestStorageClassIsClusterScoped(t *testing.T) {
	sc := &storagev1.StorageClass{ObjectMeta: metav1.ObjectMeta{Name: "standard"}}
	registry, _ := newRegistryWithFacade(fake.NewClientBuilder().WithScheme(clientgoscheme.Scheme).WithObjects(sc))

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindStorageClass, k8sinstr.ObjectParams{Namespace: "irrelevant", Name: "standard"})
	require.NoError(t, err)
	require.Equal(t, "storageclass standard exists", scanners[0].Name())
	require.Equal(t, alpacalert.Passing, scanners[0].Status().State)
}
