package domain

import (
	"fmt"
	"strings"
)

// NotifyType is the Apprise notification type.
type NotifyType string

const (
	NotifyInfo    NotifyType = "info"
	NotifySuccess NotifyType = "success"
	NotifyWarning NotifyType = "warning"
	NotifyFailure NotifyType = "failure"
)

func (t NotifyType) IsValid() bool {
	switch t {
	case NotifyInfo, NotifySuccess, NotifyWarning, NotifyFailure:
		return true
	}
	return false
}

// OverridesKey is the item field holding per-item parameter overrides.
const OverridesKey = "apprise"

// DefaultBody is used when neither the node nor the item supplies a body.
const DefaultBody = "Notification body"

// RawParams holds the node parameters as configured on the host. Nil fields
// are unset and fall back to their defaults during resolution.
//
// An item can override any of these fields by carrying an object under
// OverridesKey, e.g. {"apprise": {"useKey": true, "key": "abc"}}. Top-level
// item fields are never read, so upstream data with its own "type" or
// "title" does not leak into the notification.
type RawParams struct {
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	Type   *string `json:"type,omitempty"`
	UseKey *bool   `json:"useKey,omitempty"`
	URLs   *string `json:"urls,omitempty"`
	Key    *string `json:"key,omitempty"`
	Tag    *string `json:"tag,omitempty"`
}

// Params are the resolved parameters for one item. Exactly one of URLs and
// Key is meaningful, selected by UseKey.
type Params struct {
	Title  string
	Body   string
	Type   NotifyType
	UseKey bool
	URLs   string
	Key    string
	Tag    string
}

func (p Params) Validate() error {
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, p.Type)
	}
	if p.UseKey && p.Key == "" {
		return ErrMissingKey
	}
	if !p.UseKey && p.URLs == "" {
		return ErrMissingURLs
	}
	return nil
}

// NotifyPayload is the JSON body posted to /notify.
type NotifyPayload struct {
	Body  string     `json:"body"`
	Title string     `json:"title"`
	Type  NotifyType `json:"type"`
	URLs  string     `json:"urls,omitempty"`
}

// Item is one input record supplied by the host.
type Item struct {
	Index int            `json:"index"`
	JSON  map[string]any `json:"json"`
}

// Result is the output record for the item at Index. Err is nil on success.
type Result struct {
	Index int
	JSON  map[string]any
	Err   error
}

// ResolveParams merges the node-level parameters with the per-item overrides
// found under item.JSON[OverridesKey] and validates the outcome. It performs
// no I/O.
func ResolveParams(node RawParams, item Item) (Params, error) {
	overrides, err := itemOverrides(item)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		Title:  deref(node.Title, ""),
		Body:   deref(node.Body, DefaultBody),
		Type:   NotifyType(deref(node.Type, string(NotifyInfo))),
		UseKey: deref(node.UseKey, false),
		URLs:   deref(node.URLs, ""),
		Key:    deref(node.Key, ""),
		Tag:    deref(node.Tag, ""),
	}

	fields := []struct {
		name string
		dst  *string
	}{
		{"title", &p.Title},
		{"body", &p.Body},
		{"urls", &p.URLs},
		{"key", &p.Key},
		{"tag", &p.Tag},
	}
	for _, f := range fields {
		if err := overrideString(overrides, f.name, f.dst); err != nil {
			return Params{}, err
		}
	}

	var typ string
	if err := overrideString(overrides, "type", &typ); err != nil {
		return Params{}, err
	}
	if typ != "" {
		p.Type = NotifyType(typ)
	}

	if v, ok := overrides["useKey"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return Params{}, fmt.Errorf("%w: useKey must be a boolean", ErrInvalidParameter)
		}
		p.UseKey = b
	}

	p.Type = NotifyType(strings.ToLower(strings.TrimSpace(string(p.Type))))
	p.Key = strings.TrimSpace(p.Key)
	p.Tag = strings.TrimSpace(p.Tag)

	// Tag is only exposed alongside a persistent store key.
	if !p.UseKey {
		p.Tag = ""
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func itemOverrides(item Item) (map[string]any, error) {
	v, ok := item.JSON[OverridesKey]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidParameter, OverridesKey)
	}
	return m, nil
}

func overrideString(m map[string]any, name string, dst *string) error {
	v, ok := m[name]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %s must be a string", ErrInvalidParameter, name)
	}
	*dst = s
	return nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
