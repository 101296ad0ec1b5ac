package prometheus

import (
	"context"
	"encoding/json"
	"net/http"

	amv2models "github.com/prometheus/alertmanager/api/v2/models"

	"github.com/pkg/errors"
)

// AlertmanagerClient fetches active silences from an Alertmanager's
// v2 API. Alertmanager doesn't ship a lightweight typed client for
// this beyond its generated OpenAPI models, so the client issues the
// request directly and decodes into those models, matching this
// module's direct-HTTP approach to Grafana's rule-state endpoint
// (pkg/instrumentors/grafana.Client).
type AlertmanagerClient struct {
	baseURL string
	http    *http.Client
}

// NewAlertmanagerClient builds a client against the Alertmanager at
// baseURL. A nil httpClient uses http.DefaultClient.
func NewAlertmanagerClient(baseURL string, httpClient *http.Client) *AlertmanagerClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AlertmanagerClient{baseURL: baseURL, http: httpClient}
}

// Silences fetches every silence currently known to Alertmanager,
// active or otherwise.
func (c *AlertmanagerClient) Silences(ctx context.Context) (amv2models.GettableSilences, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v2/silences", nil)
	if err != nil {
		return nil, errors.Wrap(err, "building silences request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching alertmanager silences")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("alertmanager silences endpoint returned %s", resp.Status)
	}

	var silences amv2models.GettableSilences
	if err := json.NewDecoder(resp.Body).Decode(&silences); err != nil {
		return nil, errors.Wrap(err, "decoding alertmanager silences")
	}
	return silences, nil
}

// matchesSilence reports whether every matcher of the silence holds for
// labels, meaning the silence would suppress an alert carrying those
// labels; labels may carry keys no matcher mentions. Matchers without a
// name or value are ignored, and a silence with no matchers never
// matches.
func matchesSilence(silence *amv2models.GettableSilence, labels map[string]string) bool {
	for _, m := range silence.Matchers {
		if m.Name == nil || m.Value == nil {
			continue
		}
		want, ok := labels[*m.Name]
		if !ok {
			return false
		}
		isRegex := m.IsRegex != nil && *m.IsRegex
		isEqual := m.IsEqual == nil || *m.IsEqual
		if isRegex {
			// Regex matchers are treated conservatively: only an exact
			// literal match is recognised without a regex engine.
			if want != *m.Value {
				return false
			}
			continue
		}
		if isEqual && want != *m.Value {
			return false
		}
		if !isEqual && want == *m.Value {
			return false
		}
	}
	return len(silence.Matchers) > 0
}
