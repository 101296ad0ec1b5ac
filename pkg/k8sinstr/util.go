package k8sinstr

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// firstMatch finds the item named name among everything lister returns
// for namespace. Instrumentors whose kind has no single-object get
// method on the facade use it to resolve their ObjectParams against
// the facade's cached listing.
func firstMatch[T client.Object](ctx context.Context, lister func(context.Context, string) ([]T, error), namespace, name string) (T, bool, error) {
	var zero T
	items, err := lister(ctx, namespace)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if item.GetName() == name {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// matchLabelsOf extracts the equality-match portion of a selector, the
// only portion spec.selector.matchLabels exposes to the children()
// label-selector query.
func matchLabelsOf(selector *metav1.LabelSelector) map[string]string {
	if selector == nil {
		return nil
	}
	return selector.MatchLabels
}
