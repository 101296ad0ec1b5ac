package k8sfacade

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	storagev1 "k8s.io/api/storage/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Nodes returns every Node, cluster-wide. Nodes have no namespace.
func (f *Facade) Nodes(ctx context.Context) ([]*corev1.Node, error) {
	objs, err := f.getAll(ctx, "nodes", All, listNodes)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.Node](objs), nil
}

// StorageClasses returns every StorageClass, cluster-wide.
func (f *Facade) StorageClasses(ctx context.Context) ([]*storagev1.StorageClass, error) {
	objs, err := f.getAll(ctx, "storageclasses", All, listStorageClasses)
	if err != nil {
		return nil, err
	}
	return castSlice[*storagev1.StorageClass](objs), nil
}

// StorageClassExists reports whether name is a defined StorageClass.
func (f *Facade) StorageClassExists(ctx context.Context, name string) (bool, error) {
	return f.exists(ctx, "storageclasses", All, name, listStorageClasses)
}

// ConfigMaps lists every ConfigMap in namespace.
func (f *Facade) ConfigMaps(ctx context.Context, namespace string) ([]*corev1.ConfigMap, error) {
	objs, err := f.getAll(ctx, "configmaps", namespace, listConfigMaps)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.ConfigMap](objs), nil
}

// ConfigMapExists reports whether name exists in namespace.
func (f *Facade) ConfigMapExists(ctx context.Context, namespace, name string) (bool, error) {
	return f.exists(ctx, "configmaps", namespace, name, listConfigMaps)
}

// Secrets lists every Secret in namespace.
func (f *Facade) Secrets(ctx context.Context, namespace string) ([]*corev1.Secret, error) {
	objs, err := f.getAll(ctx, "secrets", namespace, listSecrets)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.Secret](objs), nil
}

// SecretExists reports whether name exists in namespace.
func (f *Facade) SecretExists(ctx context.Context, namespace, name string) (bool, error) {
	return f.exists(ctx, "secrets", namespace, name, listSecrets)
}

// PersistentVolumeClaims lists every PVC in namespace.
func (f *Facade) PersistentVolumeClaims(ctx context.Context, namespace string) ([]*corev1.PersistentVolumeClaim, error) {
	objs, err := f.getAll(ctx, "persistentvolumeclaims", namespace, listPVCs)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.PersistentVolumeClaim](objs), nil
}

// PersistentVolumeClaim resolves a single PVC by name.
func (f *Facade) PersistentVolumeClaim(ctx context.Context, namespace, name string) (*corev1.PersistentVolumeClaim, bool, error) {
	o, ok, err := f.get(ctx, "persistentvolumeclaims", namespace, name, listPVCs)
	if err != nil || !ok {
		return nil, ok, err
	}
	return o.(*corev1.PersistentVolumeClaim), true, nil
}

// Pods lists every Pod in namespace.
func (f *Facade) Pods(ctx context.Context, namespace string) ([]*corev1.Pod, error) {
	objs, err := f.getAll(ctx, "pods", namespace, listPods)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.Pod](objs), nil
}

// Pod resolves a single Pod by name.
func (f *Facade) Pod(ctx context.Context, namespace, name string) (*corev1.Pod, bool, error) {
	o, ok, err := f.get(ctx, "pods", namespace, name, listPods)
	if err != nil || !ok {
		return nil, ok, err
	}
	return o.(*corev1.Pod), true, nil
}

// PodsBySelector issues an uncached label-selector query for Pods, as
// children() always must.
func (f *Facade) PodsBySelector(ctx context.Context, namespace string, selector map[string]string) ([]*corev1.Pod, error) {
	objs, err := f.children(ctx, namespace, selector, podsBySelector)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.Pod](objs), nil
}

// ReplicaSetsBySelector issues an uncached label-selector query for
// ReplicaSets, the relation Deployment uses in place of Pods directly.
func (f *Facade) ReplicaSetsBySelector(ctx context.Context, namespace string, selector map[string]string) ([]*appsv1.ReplicaSet, error) {
	objs, err := f.children(ctx, namespace, selector, replicaSetsBySelector)
	if err != nil {
		return nil, err
	}
	return castSlice[*appsv1.ReplicaSet](objs), nil
}

// ReplicaSets lists every ReplicaSet in namespace.
func (f *Facade) ReplicaSets(ctx context.Context, namespace string) ([]*appsv1.ReplicaSet, error) {
	objs, err := f.getAll(ctx, "replicasets", namespace, listReplicaSets)
	if err != nil {
		return nil, err
	}
	return castSlice[*appsv1.ReplicaSet](objs), nil
}

// ReplicaSetsOwnedBy returns the ReplicaSets in namespace owned by owner.
func (f *Facade) ReplicaSetsOwnedBy(ctx context.Context, namespace string, owner client.Object) ([]*appsv1.ReplicaSet, error) {
	objs, err := f.owned(ctx, "replicasets", namespace, owner, listReplicaSets)
	if err != nil {
		return nil, err
	}
	return castSlice[*appsv1.ReplicaSet](objs), nil
}

// Deployments lists every Deployment in namespace.
func (f *Facade) Deployments(ctx context.Context, namespace string) ([]*appsv1.Deployment, error) {
	objs, err := f.getAll(ctx, "deployments", namespace, listDeployments)
	if err != nil {
		return nil, err
	}
	return castSlice[*appsv1.Deployment](objs), nil
}

// DaemonSets lists every DaemonSet in namespace.
func (f *Facade) DaemonSets(ctx context.Context, namespace string) ([]*appsv1.DaemonSet, error) {
	objs, err := f.getAll(ctx, "daemonsets", namespace, listDaemonSets)
	if err != nil {
		return nil, err
	}
	return castSlice[*appsv1.DaemonSet](objs), nil
}

// StatefulSets lists every StatefulSet in namespace.
func (f *Facade) StatefulSets(ctx context.Context, namespace string) ([]*appsv1.StatefulSet, error) {
	objs, err := f.getAll(ctx, "statefulsets", namespace, listStatefulSets)
	if err != nil {
		return nil, err
	}
	return castSlice[*appsv1.StatefulSet](objs), nil
}

// Jobs lists every Job in namespace.
func (f *Facade) Jobs(ctx context.Context, namespace string) ([]*batchv1.Job, error) {
	objs, err := f.getAll(ctx, "jobs", namespace, listJobs)
	if err != nil {
		return nil, err
	}
	return castSlice[*batchv1.Job](objs), nil
}

// JobsOwnedBy returns the Jobs in namespace owned by owner, the relation
// CronJob uses in place of a label selector.
func (f *Facade) JobsOwnedBy(ctx context.Context, namespace string, owner client.Object) ([]*batchv1.Job, error) {
	objs, err := f.owned(ctx, "jobs", namespace, owner, listJobs)
	if err != nil {
		return nil, err
	}
	return castSlice[*batchv1.Job](objs), nil
}

// CronJobs lists every CronJob in namespace.
func (f *Facade) CronJobs(ctx context.Context, namespace string) ([]*batchv1.CronJob, error) {
	objs, err := f.getAll(ctx, "cronjobs", namespace, listCronJobs)
	if err != nil {
		return nil, err
	}
	return castSlice[*batchv1.CronJob](objs), nil
}

// Services lists every Service in namespace.
func (f *Facade) Services(ctx context.Context, namespace string) ([]*corev1.Service, error) {
	objs, err := f.getAll(ctx, "services", namespace, listServices)
	if err != nil {
		return nil, err
	}
	return castSlice[*corev1.Service](objs), nil
}

// Service resolves a single Service by name.
func (f *Facade) Service(ctx context.Context, namespace, name string) (*corev1.Service, bool, error) {
	o, ok, err := f.get(ctx, "services", namespace, name, listServices)
	if err != nil || !ok {
		return nil, ok, err
	}
	return o.(*corev1.Service), true, nil
}

// Ingresses lists every Ingress in namespace.
func (f *Facade) Ingresses(ctx context.Context, namespace string) ([]*networkingv1.Ingress, error) {
	objs, err := f.getAll(ctx, "ingresses", namespace, listIngresses)
	if err != nil {
		return nil, err
	}
	return castSlice[*networkingv1.Ingress](objs), nil
}
