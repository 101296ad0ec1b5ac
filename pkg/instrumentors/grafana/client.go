package grafana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	gapi "github.com/grafana/grafana-api-golang-client"
	"github.com/pkg/errors"
)

// Client fetches Grafana unified-alerting rule groups. The rule-state
// endpoint (/api/prometheus/grafana/api/v1/rules) reports runtime
// evaluation state and isn't part of gapi's typed provisioning API, so
// Client issues that request directly over an *http.Client. The
// request carries no credentials of its own: cfg.APIKey and
// cfg.BasicAuth are not applied, and only what the *http.Client's
// transport adds is sent.
//
// A Client is request-scoped: RuleGroups fetches once per Client and
// keeps the result for the Client's lifetime. Callers construct one
// Client per scan, matching the no-TTL-inside-a-scan cache shape used
// by pkg/k8sfacade.
type Client struct {
	baseURL string
	http    *http.Client

	groups []Group
}

// NewClient builds a Client for the Grafana at baseURL. baseURL and cfg
// are checked by constructing a gapi.Client, which sends no request.
// cfg.Client, when non-nil, is the *http.Client used for the raw
// rule-state request; otherwise http.DefaultClient is used.
func NewClient(baseURL string, cfg gapi.Config) (*Client, error) {
	if _, err := gapi.New(baseURL, cfg); err != nil {
		return nil, errors.Wrap(err, "constructing grafana client")
	}
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// rulesResponse mirrors the top level of Grafana's Prometheus-compatible
// rule-state payload.
type rulesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Groups []Group `json:"groups"`
	} `json:"data"`
}

// ruleGroups fetches and caches the full set of alert rule groups
// across every folder. Subsequent calls on the same Client reuse the
// cached result.
func (c *Client) ruleGroups(ctx context.Context) ([]Group, error) {
	if c.groups != nil {
		return c.groups, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/prometheus/grafana/api/v1/rules", nil)
	if err != nil {
		return nil, errors.Wrap(err, "building rule-state request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching grafana rule groups")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("grafana rule-state endpoint returned %s", resp.Status)
	}

	var parsed rulesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decoding grafana rule groups")
	}

	c.groups = parsed.Data.Groups
	return c.groups, nil
}

// Group resolves a single rule group by name, searching every folder.
func (c *Client) Group(ctx context.Context, name string) (Group, bool, error) {
	groups, err := c.ruleGroups(ctx)
	if err != nil {
		return Group{}, false, err
	}
	for _, g := range groups {
		if g.Name == name {
			return g, true, nil
		}
	}
	return Group{}, false, nil
}

// Rule resolves a single rule by group and rule name.
func (c *Client) Rule(ctx context.Context, group, name string) (Rule, bool, error) {
	g, ok, err := c.Group(ctx, group)
	if err != nil || !ok {
		return Rule{}, ok, err
	}
	for _, r := range g.Rules {
		if r.Name == name {
			return r, true, nil
		}
	}
	return Rule{}, false, nil
}
