package grafana

import "github.com/lilatomic/alpacalert/pkg/instrumentor"

const namespaceKind = "grafana.org/alerts"

var (
	KindAlertRule  = instrumentor.Kind{Namespace: namespaceKind, Name: "alertrule"}
	KindAlertGroup = instrumentor.Kind{Namespace: namespaceKind, Name: "alertgroup"}
)

// AlertRuleParams names a single rule within a named group.
type AlertRuleParams struct {
	Group string
	Name  string

	// StateWhenPending overrides the state reported while a rule or
	// alert is in RuleStatePending/AlertStatePending, matching the
	// original's default of PASSING when unset.
	StateWhenPending *bool
}

func (p AlertRuleParams) Describe() string {
	return "grafana alertrule " + p.Group + "/" + p.Name
}

// AlertGroupParams names a rule group by its own name.
type AlertGroupParams struct {
	Name string
}

func (p AlertGroupParams) Describe() string { return "grafana alertgroup " + p.Name }
