// Package grafana instruments Grafana unified-alerting rule state as
// alpacalert Scanners. It is additive to the Kubernetes core: nothing
// in pkg/k8sinstr imports it.
package grafana

import "time"

// AlertState mirrors the state values reported by Grafana's
// Prometheus-compatible rule-state endpoint
// (/api/prometheus/grafana/api/v1/rules).
type AlertState string

const (
	AlertStateNormal         AlertState = "Normal"
	AlertStateNormalError    AlertState = "Normal (Error)"
	AlertStateAlerting       AlertState = "Alerting"
	AlertStateAlertingNoData AlertState = "Alerting (NoData)"
	AlertStateAlertingError  AlertState = "Alerting (Error)"
	AlertStatePending        AlertState = "Pending"
	AlertStatePendingNoData  AlertState = "Pending (NoData)"
	AlertStateNoData         AlertState = "NoData"
	AlertStateError          AlertState = "Error"
	AlertStateInactive       AlertState = "inactive"
)

// RuleState is the rule's own evaluation state, one notch up from the
// individual alert instances it fired.
type RuleState string

const (
	RuleStateInactive RuleState = "inactive"
	RuleStatePending  RuleState = "pending"
	RuleStateFiring   RuleState = "firing"
)

// Alert is one firing instance of a Rule, keyed by its label set.
type Alert struct {
	Labels      map[string]string
	Annotations map[string]string
	State       AlertState
	ActiveAt    time.Time
	Value       string
}

// Name resolves the alert's display name from its labels, preferring
// the series __name__ label over alertname.
func (a Alert) Name() string {
	if v, ok := a.Labels["__name__"]; ok {
		return v
	}
	if v, ok := a.Labels["alertname"]; ok {
		return v
	}
	return "Alert"
}

// Rule is one alerting rule within a Group, carrying every Alert
// instance it currently has active.
type Rule struct {
	Name   string
	Query  string
	State  RuleState
	Alerts []Alert
}

// Group is a named rule group within a folder (Grafana's "file").
type Group struct {
	Name  string
	File  string
	Rules []Rule
}
