package grafana

import (
	"context"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// ruleScanner reports a Grafana alerting rule's own evaluation state
// (not a reduction over its alert instances, which Grafana evaluates
// independently per series); its Alerts are exposed as children purely
// for display, mirroring original_source's ScannerRule.
type ruleScanner struct {
	rule   Rule
	alerts []alpacalert.Scanner

	stateWhenPending alpacalert.State
}

func (s ruleScanner) Name() string { return s.rule.Name }

func (s ruleScanner) Status() alpacalert.Status {
	var state alpacalert.State
	switch s.rule.State {
	case RuleStatePending:
		state = s.stateWhenPending
	case RuleStateFiring:
		state = alpacalert.Failing
	case RuleStateInactive:
		state = alpacalert.Passing
	default:
		state = alpacalert.Unknown
	}

	var severity alpacalert.Severity
	switch state {
	case alpacalert.Passing:
		severity = alpacalert.SeverityInfo
	case alpacalert.Failing:
		severity = alpacalert.SeverityError
	default:
		severity = alpacalert.SeverityWarn
	}

	return alpacalert.Status{State: state, Messages: []alpacalert.Log{{Message: string(s.rule.State), Severity: severity}}}
}

func (s ruleScanner) Children() []alpacalert.Scanner { return s.alerts }

// RuleInstrumentor instruments a single named rule within a named
// group, defaulting to PASSING while the rule is pending.
type RuleInstrumentor struct {
	Client *Client
}

func (i *RuleInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindAlertRule, Instrumentor: i}}
}

func (i *RuleInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[AlertRuleParams](params)
	if err != nil {
		return nil, err
	}

	rule, ok, err := i.Client.Rule(ctx, p.Group, p.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &notFoundError{Kind: KindAlertRule, Name: p.Group + "/" + p.Name}
	}

	stateWhenPending := alpacalert.Passing
	if p.StateWhenPending != nil && !*p.StateWhenPending {
		stateWhenPending = alpacalert.Failing
	}

	alerts := make([]alpacalert.Scanner, len(rule.Alerts))
	for idx, a := range rule.Alerts {
		alerts[idx] = alertSensor{alert: a, stateWhenPending: stateWhenPending}
	}

	return []alpacalert.Scanner{ruleScanner{rule: rule, alerts: alerts, stateWhenPending: stateWhenPending}}, nil
}
