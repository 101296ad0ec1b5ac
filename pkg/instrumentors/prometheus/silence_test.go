package prometheus_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/instrumentors/prometheus"
)

const activeSilenceMatchingAlert = `[
  {
    "id": "silence-1",
    "status": {"state": "active"},
    "comment": "planned maintenance",
    "createdBy": "oncall",
    "startsAt": "2024-01-01T00:00:00Z",
    "endsAt": "2024-01-02T00:00:00Z",
    "updatedAt": "2024-01-01T00:00:00Z",
    "matchers": [
      {"name": "alertname", "value": "NodeDown", "isRegex": false, "isEqual": true}
    ]
  }
]`

const expiredSilenceNotMatching = `[
  {
    "id": "silence-2",
    "status": {"state": "expired"},
    "comment": "old",
    "createdBy": "oncall",
    "startsAt": "2023-01-01T00:00:00Z",
    "endsAt": "2023-01-02T00:00:00Z",
    "updatedAt": "2023-01-01T00:00:00Z",
    "matchers": [
      {"name": "alertname", "value": "NodeDown", "isRegex": false, "isEqual": true}
    ]
  }
]`

func newSilenceRegistry(t *testing.T, body string) *instrumentor.Registry {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := prometheus.NewAlertmanagerClient(srv.URL, nil)
	registry := instrumentor.NewRegistry()
	registry.Install(&prometheus.SilenceInstrumentor{Client: client})
	return registry
}

func TestSilenceActiveMatchIsFailing(t *testing.T) {
	registry := newSilenceRegistry(t, activeSilenceMatchingAlert)

	scanners, err := registry.Instrument(t.Context(), prometheus.KindAlertmanagerSilence, prometheus.SilenceParams{AlertName: "NodeDown"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	status := scanners[0].Status()
	if status.State != alpacalert.Failing {
		t.Errorf("state = %v, want Failing", status.State)
	}
	if len(status.Messages) != 1 || status.Messages[0].Severity != alpacalert.SeverityWarn {
		t.Errorf("messages = %v, want a single WARN log naming the silence", status.Messages)
	}
}

func TestSilenceExpiredIsPassing(t *testing.T) {
	registry := newSilenceRegistry(t, expiredSilenceNotMatching)

	scanners, err := registry.Instrument(t.Context(), prometheus.KindAlertmanagerSilence, prometheus.SilenceParams{AlertName: "NodeDown"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Passing {
		t.Errorf("state = %v, want Passing (silence is expired, not active)", got)
	}
}

func TestSilenceNoSilencesIsPassing(t *testing.T) {
	registry := newSilenceRegistry(t, `[]`)

	scanners, err := registry.Instrument(t.Context(), prometheus.KindAlertmanagerSilence, prometheus.SilenceParams{AlertName: "NodeDown"})
	if err != nil {
		t.Fatalf("Instrument() error = %v", err)
	}
	if got := scanners[0].Status().State; got != alpacalert.Passing {
		t.Errorf("state = %v, want Passing", got)
	}
}
