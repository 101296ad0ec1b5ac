// Package instrumentor implements the kind-keyed dispatch Registry that
// recursively translates external objects into alpacalert.Scanner
// trees.
package instrumentor

import "fmt"

// Kind identifies a class of instrumentable resource, e.g.
// ("kubernetes.io", "Pod") or ("grafana.org/alerts", "alertrule").
type Kind struct {
	Namespace string
	Name      string
}

func (k Kind) String() string {
	return fmt.Sprintf("%s/%s", k.Namespace, k.Name)
}

// Params is the marker interface implemented by every kind-specific
// request payload. Using one concrete type per Kind (a sum type, in
// spirit) recovers compile-time checking of which fields a given kind
// expects, in place of the original project's dynamic **kwargs bag.
type Params interface {
	// Describe returns a short human-readable summary, used in error
	// messages when an Instrumentor receives Params of the wrong
	// concrete type.
	Describe() string
}
