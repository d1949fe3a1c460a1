// Package credential declares the Apprise API credential and its
// connectivity test.
package credential

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/notifyhub/apprise-node/internal/domain"
)

// Property describes one configurable field of a credential or node.
type Property struct {
	DisplayName string         `json:"displayName"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Default     any            `json:"default"`
	Placeholder string         `json:"placeholder,omitempty"`
	Description string         `json:"description,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Options     []Option       `json:"options,omitempty"`
	DisplayShow map[string]any `json:"displayShow,omitempty"`
	DisplayHide map[string]any `json:"displayHide,omitempty"`
}

// Option is one choice of an options-typed Property.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Descriptor is the declarative metadata the host renders and stores.
type Descriptor struct {
	Name             string     `json:"name"`
	DisplayName      string     `json:"displayName"`
	DocumentationURL string     `json:"documentationUrl"`
	Properties       []Property `json:"properties"`
	TestPath         string     `json:"testPath"`
}

// Name is the identifier nodes use to request this credential.
const Name = "appriseApi"

func Describe() Descriptor {
	return Descriptor{
		Name:             Name,
		DisplayName:      "Apprise Instance API",
		DocumentationURL: "https://github.com/caronc/apprise",
		Properties: []Property{{
			DisplayName: "Domain",
			Name:        "domain",
			Type:        "string",
			Default:     domain.DefaultDomain,
		}},
		TestPath: "/",
	}
}

// Tester probes an Apprise instance for reachability.
type Tester struct {
	httpClient *http.Client
}

func NewTester(client *http.Client) *Tester {
	if client == nil {
		client = http.DefaultClient
	}
	return &Tester{httpClient: client}
}

// Test issues GET {domain}/ once. Any status below 400 counts as reachable.
func (t *Tester) Test(ctx context.Context, cred domain.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cred.BaseURL()+"/", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", cred.BaseURL(), err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("probe %s: %w: %d", cred.BaseURL(), domain.ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}
