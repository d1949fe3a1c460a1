package domain

import "strings"

// DefaultDomain is the public Apprise API instance.
const DefaultDomain = "https://apprise.org"

// Credential locates the Apprise API instance. It is resolved once per run
// and only read afterwards.
type Credential struct {
	Domain string `json:"domain"`
}

// BaseURL returns the domain without a trailing slash.
func (c Credential) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.Domain), "/")
}

func (c Credential) Validate() error {
	if c.BaseURL() == "" {
		return ErrEmptyDomain
	}
	return nil
}
