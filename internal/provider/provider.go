package provider

import (
	"context"
	"net/url"
	"strings"

	"github.com/notifyhub/apprise-node/internal/domain"
)

// Provider abstracts delivery to an Apprise API instance.
// Mocking this interface in tests gives full control over remote behaviour
// without making real HTTP calls.
type Provider interface {
	Notify(ctx context.Context, cred domain.Credential, p domain.Params) error
}

// BuildRequest computes the target URL and JSON payload for one notification.
//
//	useKey:  {domain}/notify/{key}   payload without urls
//	default: {domain}/notify/        payload.urls = p.URLs
//
// A non-empty tag is appended as ?tag={tag}. Commas separate tags and are
// kept literal; anything else that would break the query is escaped.
func BuildRequest(cred domain.Credential, p domain.Params) (string, domain.NotifyPayload) {
	payload := domain.NotifyPayload{
		Body:  p.Body,
		Title: p.Title,
		Type:  p.Type,
	}

	target := cred.BaseURL() + "/notify/"
	if p.UseKey {
		target += url.PathEscape(p.Key)
	} else {
		payload.URLs = p.URLs
	}
	if p.Tag != "" {
		target += "?tag=" + escapeTag(p.Tag)
	}

	return target, payload
}

func escapeTag(tag string) string {
	return strings.ReplaceAll(url.QueryEscape(tag), "%2C", ",")
}
