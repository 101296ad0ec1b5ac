// Package prometheus instruments a Prometheus boolean query and an
// Alertmanager silence check as alpacalert Scanners. It is additive to
// the Kubernetes core: nothing in pkg/k8sinstr imports it.
package prometheus

import "github.com/lilatomic/alpacalert/pkg/instrumentor"

var (
	KindQuery               = instrumentor.Kind{Namespace: "prometheus.io", Name: "query"}
	KindAlertmanagerSilence = instrumentor.Kind{Namespace: "prometheus.io", Name: "alertmanager_silence"}
)

// QueryParams names a PromQL instant query to evaluate as a boolean
// health check.
type QueryParams struct {
	Query string
}

func (p QueryParams) Describe() string { return "prometheus query " + p.Query }

// SilenceParams names the alert a silence check guards: PASSING unless
// an active silence has every one of its matchers satisfied by the
// labels alertname=AlertName plus Matchers.
type SilenceParams struct {
	AlertName string
	Matchers  map[string]string
}

func (p SilenceParams) Describe() string { return "alertmanager silence check for " + p.AlertName }
