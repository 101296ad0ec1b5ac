package grafana_test

import (
	"testing"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentors/grafana"
)

func TestGroupFailsWhenAnyRuleFires(t *testing.T) {
	registry := newRegistry(t, fixtureBody)

	scanners, err := registry.Instrument(t.Context(), grafana.KindAlertGroup, grafana.AlertGroupParams{Name: "node-rules"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Failing {
		t.Errorf("state = %v, want Failing (NodeDown is firing)", got)
	}
	if len(scanners[0].Children()) != 2 {
		t.Errorf("len(Children()) = %d, want 2", len(scanners[0].Children()))
	}
}

func TestGroupNotFound(t *testing.T) {
	registry := newRegistry(t, fixtureBody)

	_, err := registry.Instrument(t.Context(), grafana.KindAlertGroup, grafana.AlertGroupParams{Name: "missing"})
	if err == nil {
		t.Fatal("Instrument() error = nil, want not-found error")
	}
}
