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

func listNodes(ctx context.Context, c client.Client, _ string) ([]client.Object, error) {
	var list corev1.NodeList
	if err := c.List(ctx, &list); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listStorageClasses(ctx context.Context, c client.Client, _ string) ([]client.Object, error) {
	var list storagev1.StorageClassList
	if err := c.List(ctx, &list); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listConfigMaps(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list corev1.ConfigMapList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listSecrets(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list corev1.SecretList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listPVCs(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list corev1.PersistentVolumeClaimList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listPods(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list corev1.PodList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listReplicaSets(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list appsv1.ReplicaSetList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listDeployments(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list appsv1.DeploymentList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listDaemonSets(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list appsv1.DaemonSetList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listStatefulSets(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list appsv1.StatefulSetList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listJobs(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list batchv1.JobList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listCronJobs(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list batchv1.CronJobList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listServices(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list corev1.ServiceList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func listIngresses(ctx context.Context, c client.Client, namespace string) ([]client.Object, error) {
	var list networkingv1.IngressList
	if err := c.List(ctx, &list, listOpts(namespace)...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func podsBySelector(ctx context.Context, c client.Client, namespace string, selector map[string]string) ([]client.Object, error) {
	var list corev1.PodList
	opts := selectorListOpts(namespace, selector)
	if err := c.List(ctx, &list, opts...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func replicaSetsBySelector(ctx context.Context, c client.Client, namespace string, selector map[string]string) ([]client.Object, error) {
	var list appsv1.ReplicaSetList
	opts := selectorListOpts(namespace, selector)
	if err := c.List(ctx, &list, opts...); err != nil {
		return nil, err
	}
	out := make([]client.Object, len(list.Items))
	for i := range list.Items {
		out[i] = &list.Items[i]
	}
	return out, nil
}

func selectorListOpts(namespace string, selector map[string]string) []client.ListOption {
	opts := []client.ListOption{client.MatchingLabels(selector)}
	if namespace != All {
		opts = append(opts, client.InNamespace(namespace))
	}
	return opts
}
