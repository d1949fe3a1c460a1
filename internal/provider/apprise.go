package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/notifyhub/apprise-node/internal/domain"
)

// AppriseProvider delivers notifications by POSTing to {domain}/notify.
// The response body is never inspected; only the status code matters.
type AppriseProvider struct {
	httpClient *http.Client
}

// NewAppriseProvider builds a provider. A zero timeout leaves the transport
// default in place.
func NewAppriseProvider(timeout time.Duration) *AppriseProvider {
	return NewAppriseProviderWithClient(&http.Client{Timeout: timeout})
}

func NewAppriseProviderWithClient(client *http.Client) *AppriseProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &AppriseProvider{httpClient: client}
}

// Notify posts one notification and treats any 2xx status as success.
func (p *AppriseProvider) Notify(ctx context.Context, cred domain.Credential, params domain.Params) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	target, payload := BuildRequest(cred, params)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}

// compile-time check that AppriseProvider implements Provider
var _ Provider = (*AppriseProvider)(nil)
