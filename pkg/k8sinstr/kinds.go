// Package k8sinstr instruments live Kubernetes objects into
// alpacalert.Scanner trees: one Instrumentor per object kind, dispatched
// through an instrumentor.Registry and backed by a k8sfacade.Facade.
package k8sinstr

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"

	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

const namespaceKind = "kubernetes.io"

var (
	KindCluster               = instrumentor.Kind{Namespace: namespaceKind, Name: "Cluster"}
	KindNode                  = instrumentor.Kind{Namespace: namespaceKind, Name: "Node"}
	KindConfigMap             = instrumentor.Kind{Namespace: namespaceKind, Name: "ConfigMap"}
	KindSecret                = instrumentor.Kind{Namespace: namespaceKind, Name: "Secret"}
	KindStorageClass          = instrumentor.Kind{Namespace: namespaceKind, Name: "StorageClass"}
	KindPersistentVolumeClaim = instrumentor.Kind{Namespace: namespaceKind, Name: "PersistentVolumeClaim"}
	KindPod                   = instrumentor.Kind{Namespace: namespaceKind, Name: "Pod"}
	KindPodContainer          = instrumentor.Kind{Namespace: namespaceKind, Name: "Pod#container"}
	KindPodVolume             = instrumentor.Kind{Namespace: namespaceKind, Name: "Pod#volume"}
	KindReplicaSet            = instrumentor.Kind{Namespace: namespaceKind, Name: "ReplicaSet"}
	KindDeployment            = instrumentor.Kind{Namespace: namespaceKind, Name: "Deployment"}
	KindDaemonSet             = instrumentor.Kind{Namespace: namespaceKind, Name: "DaemonSet"}
	KindStatefulSet           = instrumentor.Kind{Namespace: namespaceKind, Name: "StatefulSet"}
	KindJob                   = instrumentor.Kind{Namespace: namespaceKind, Name: "Job"}
	KindCronJob               = instrumentor.Kind{Namespace: namespaceKind, Name: "CronJob"}
	KindService               = instrumentor.Kind{Namespace: namespaceKind, Name: "Service"}
	KindIngress               = instrumentor.Kind{Namespace: namespaceKind, Name: "Ingress"}
	KindIngressPath           = instrumentor.Kind{Namespace: namespaceKind, Name: "Ingress#path"}
)

// topLevelKinds lists the kinds Cluster enumerates directly; sub-kinds
// carrying "#" are reached only by recursing through their owning kind.
var topLevelKinds = []instrumentor.Kind{
	KindNode, KindConfigMap, KindSecret, KindStorageClass, KindPersistentVolumeClaim,
	KindPod, KindReplicaSet, KindDeployment, KindDaemonSet, KindStatefulSet,
	KindJob, KindCronJob, KindService, KindIngress,
}

// ObjectParams identifies a single namespaced (or cluster-scoped, when
// Namespace is k8sfacade.All) object by name. It is the Params payload
// for every top-level Kind: the Instrumentor resolves the object itself
// via the Facade rather than receiving it pre-fetched.
type ObjectParams struct {
	Namespace string
	Name      string
}

func (p ObjectParams) Describe() string {
	return fmt.Sprintf("object %s/%s", p.Namespace, p.Name)
}

// ClusterParams selects the namespace a Cluster scan is scoped to;
// k8sfacade.All scans every namespace.
type ClusterParams struct {
	Name      string
	Namespace string
}

func (p ClusterParams) Describe() string { return fmt.Sprintf("cluster %s", p.Name) }

// ContainerParams carries a single container's status, already embedded
// in a fetched Pod, to the Pod#container Instrumentor.
type ContainerParams struct {
	Namespace string
	PodName   string
	Status    corev1.ContainerStatus
}

func (p ContainerParams) Describe() string {
	return fmt.Sprintf("container %s of pod %s/%s", p.Status.Name, p.Namespace, p.PodName)
}

// VolumeParams carries a single volume, already embedded in a fetched
// Pod, to the Pod#volume Instrumentor.
type VolumeParams struct {
	Namespace string
	PodName   string
	Volume    corev1.Volume
}

func (p VolumeParams) Describe() string {
	return fmt.Sprintf("volume %s of pod %s/%s", p.Volume.Name, p.Namespace, p.PodName)
}

// IngressPathParams carries a single rule/path pair, already embedded in
// a fetched Ingress, to the Ingress#path Instrumentor.
type IngressPathParams struct {
	Namespace string
	RuleIndex int
	PathIndex int
	Path      networkingv1.HTTPIngressPath
}

func (p IngressPathParams) Describe() string {
	return fmt.Sprintf("ingress path %d:%d %s", p.RuleIndex, p.PathIndex, p.Path.Path)
}
