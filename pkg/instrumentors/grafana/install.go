package grafana

import "github.com/lilatomic/alpacalert/pkg/instrumentor"

// Install registers every Grafana instrumentor in this package against
// registry, sharing one request-scoped Client across them.
func Install(registry *instrumentor.Registry, client *Client) {
	registry.Install(&RuleInstrumentor{Client: client})
	registry.Install(&GroupInstrumentor{Client: client})
}
