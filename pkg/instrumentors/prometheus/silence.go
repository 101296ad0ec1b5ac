package prometheus

import (
	"context"
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
	"github.com/lilatomic/alpacalert/pkg/instrumentor"
)

// SilenceInstrumentor reports whether an active Alertmanager silence
// currently masks an alert. A silenced alert is reported FAILING, not
// PASSING or UNKNOWN: from the Service's point of view a silenced
// failure is still a failure, only its notification is suppressed.
type SilenceInstrumentor struct {
	Client *AlertmanagerClient
}

func (i *SilenceInstrumentor) Registrations() []instrumentor.Registration {
	return []instrumentor.Registration{{Kind: KindAlertmanagerSilence, Instrumentor: i}}
}

func (i *SilenceInstrumentor) Instrument(ctx context.Context, _ *instrumentor.Registry, _ instrumentor.Kind, params instrumentor.Params) ([]alpacalert.Scanner, error) {
	p, err := expectParams[SilenceParams](params)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(p.Matchers)+1)
	for k, v := range p.Matchers {
		labels[k] = v
	}
	labels["alertname"] = p.AlertName

	silences, err := i.Client.Silences(ctx)
	if err != nil {
		return nil, err
	}

	name := "alertmanager_silence " + p.AlertName
	for _, s := range silences {
		if s.Status == nil || s.Status.State == nil || *s.Status.State != "active" {
			continue
		}
		if !matchesSilence(s, labels) {
			continue
		}
		id := ""
		if s.ID != nil {
			id = *s.ID
		}
		return []alpacalert.Scanner{alpacalert.NewConstantSensor(name, alpacalert.Status{
			State: alpacalert.Failing,
			Messages: []alpacalert.Log{{
				Message:  fmt.Sprintf("silenced by active silence %s", id),
				Severity: alpacalert.SeverityWarn,
			}},
		})}, nil
	}

	return []alpacalert.Scanner{alpacalert.NewConstantSensor(name, alpacalert.Status{State: alpacalert.Passing})}, nil
}
