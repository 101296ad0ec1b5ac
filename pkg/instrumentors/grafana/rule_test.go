package grafana_test

import (
	"testing"

	gapi "github.com/grafana/grafana-api-golang-client"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/instrumentors/grafana"
)

func newRegistry(t *testing.T, body string) *instrumentor.Registry {
	t.Helper()
	client := newTestClient(t, body)
	registry := instrumentor.NewRegistry()
	grafana.Install(registry, client)
	return registry
}

func TestRuleFiringIsFailing(t *testing.T) {
	registry := newRegistry(t, fixtureBody)

	scanners, err := registry.Instrument(t.Context(), grafana.KindAlertRule, grafana.AlertRuleParams{Group: "node-rules", Name: "NodeDown"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Failing {
		t.Errorf("state = %v, want Failing", got)
	}
	if len(scanners[0].Children()) != 1 {
		t.Errorf("len(Children()) = %d, want 1 (one Alerting instance)", len(scanners[0].Children()))
	}
}

func TestRuleInactiveIsPassing(t *testing.T) {
	registry := newRegistry(t, fixtureBody)

	scanners, err := registry.Instrument(t.Context(), grafana.KindAlertRule, grafana.AlertRuleParams{Group: "node-rules", Name: "DiskFull"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Passing {
		t.Errorf("state = %v, want Passing", got)
	}
}

func TestRuleNotFound(t *testing.T) {
	registry := newRegistry(t, fixtureBody)

	_, err := registry.Instrument(t.Context(), grafana.KindAlertRule, grafana.AlertRuleParams{Group: "node-rules", Name: "Missing"})
	if err == nil {
		t.Fatal("Instrument() error = nil, want not-found error")
	}
}
