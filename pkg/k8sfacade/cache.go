// Package k8sfacade is a request-scoped cache and client facade over
// the live Kubernetes API: it deduplicates list calls within one scan
// and resolves owner-reference and label-selector relations for the
// Kubernetes instrumentors in pkg/k8sinstr.
package k8sfacade

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
)

// All is the namespace sentinel meaning "cluster-wide": it doubles as
// the namespace controller-runtime's client.List treats as
// unrestricted, so it needs no special-casing at the client boundary.
const All = ""

type cacheKey struct {
	resource  string
	namespace string
}

// listFunc fetches every object of one resource kind in namespace from
// the live API. Once a call for a (resource, namespace) succeeds, it is
// not called again for that pair within the lifetime of one Facade; a
// failed call is not cached.
type listFunc func(ctx context.Context, c client.Client, namespace string) ([]client.Object, error)

// Facade is the per-scan cache owned by the root of one evaluation. It
// must not be shared across scans: cache entries never mutate once
// populated, so reuse would serve stale data to a later scan.
type Facade struct {
	client client.Client

	mu      sync.Mutex
	listed  map[cacheKey]bool
	objects map[cacheKey][]client.Object
	byName  map[cacheKey]map[string]client.Object
}

// New wraps c in a fresh, empty Facade.
func New(c client.Client) *Facade {
	return &Facade{
		client:  c,
		listed:  make(map[cacheKey]bool),
		objects: make(map[cacheKey][]client.Object),
		byName:  make(map[cacheKey]map[string]client.Object),
	}
}

// Client exposes the underlying controller-runtime client, for the
// rare instrumentor that must resolve owner GroupVersionKinds or
// perform an uncached selector query directly.
func (f *Facade) Client() client.Client { return f.client }

func listOpts(namespace string) []client.ListOption {
	if namespace == All {
		return nil
	}
	return []client.ListOption{client.InNamespace(namespace)}
}

// getAll lists every object of resource in namespace, populating the
// cache on first call and serving subsequent calls for the same key
// from memory. Holding the mutex for the full duration of a miss
// serializes concurrent callers onto a single underlying list call,
// satisfying the "at most one list call per (kind, namespace) per
// scan" invariant without needing a separate singleflight dependency.
func (f *Facade) getAll(ctx context.Context, resource, namespace string, list listFunc) ([]client.Object, error) {
	key := cacheKey{resource: resource, namespace: namespace}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listed[key] {
		return f.objects[key], nil
	}

	objs, err := list(ctx, f.client, namespace)
	if err != nil {
		return nil, &APIError{Op: fmt.Sprintf("list %s in namespace %q", resource, displayNamespace(namespace)), Cause: err}
	}

	byName := make(map[string]client.Object, len(objs))
	for _, o := range objs {
		byName[o.GetName()] = o
	}

	f.listed[key] = true
	f.objects[key] = objs
	f.byName[key] = byName
	return objs, nil
}

// get resolves name within (resource, namespace), populating the full
// list via getAll on a cache miss rather than fetching the single
// object directly, per the cache invariant that a hit implies the
// namespace was fully listed.
func (f *Facade) get(ctx context.Context, resource, namespace, name string, list listFunc) (client.Object, bool, error) {
	if _, err := f.getAll(ctx, resource, namespace, list); err != nil {
		return nil, false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byName[cacheKey{resource: resource, namespace: namespace}][name]
	return o, ok, nil
}

// exists reports whether name is present, without distinguishing a
// missing object from one indistinguishable from missing.
func (f *Facade) exists(ctx context.Context, resource, namespace, name string, list listFunc) (bool, error) {
	_, ok, err := f.get(ctx, resource, namespace, name, list)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// children issues a fresh, uncached label-selector query: selector
// identity is not part of the cache key, so callers accept the extra
// round-trip rather than risk serving stale or mismatched selections.
func (f *Facade) children(ctx context.Context, namespace string, selector map[string]string, list func(context.Context, client.Client, string, map[string]string) ([]client.Object, error)) ([]client.Object, error) {
	objs, err := list(ctx, f.client, namespace, selector)
	if err != nil {
		return nil, &APIError{Op: "list by selector", Cause: err}
	}
	return objs, nil
}

// owned filters the cached list for resource/namespace down to objects
// whose ownerReferences name owner, resolving owner's
// GroupVersionKind through the client's scheme the way
// controller-runtime reconcilers do (apiutil.GVKForObject) rather than
// trusting TypeMeta, which typed client-go objects normally leave
// unset.
func (f *Facade) owned(ctx context.Context, resource, namespace string, owner client.Object, list listFunc) ([]client.Object, error) {
	gvk, err := apiutil.GVKForObject(owner, f.client.Scheme())
	if err != nil {
		return nil, errors.Wrap(err, "resolve owner GroupVersionKind")
	}
	apiVersion, kind := gvk.ToAPIVersionAndKind()

	objs, err := f.getAll(ctx, resource, namespace, list)
	if err != nil {
		return nil, err
	}

	var out []client.Object
	for _, o := range objs {
		for _, ref := range o.GetOwnerReferences() {
			if ref.Kind == kind && ref.APIVersion == apiVersion && ref.Name == owner.GetName() {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

func displayNamespace(namespace string) string {
	if namespace == All {
		return "<all>"
	}
	return namespace
}

func castSlice[T client.Object](objs []client.Object) []T {
	out := make([]T, len(objs))
	for i, o := range objs {
		out[i] = o.(T) //nolint:forcetypeassert // populated exclusively by this package's typed lister funcs
	}
	return out
}
