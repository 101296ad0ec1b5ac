package prometheus

import "github.com/lilatomic/alpacalert/pkg/instrumentor"

// Install registers the Prometheus query and Alertmanager silence
// instrumentors against registry.
func Install(registry *instrumentor.Registry, query *QueryInstrumentor, silence *SilenceInstrumentor) {
	registry.Install(query)
	registry.Install(silence)
}
