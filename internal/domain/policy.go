package domain

import "fmt"

// Policy decides what a batch does when one item fails.
type Policy string

const (
	// PolicyFailFast aborts the batch on the first failing item.
	PolicyFailFast Policy = "fail_fast"
	// PolicyCollectErrors records the failure on the item and moves on.
	PolicyCollectErrors Policy = "collect_errors"
)

func (p Policy) IsValid() bool {
	switch p {
	case PolicyFailFast, PolicyCollectErrors:
		return true
	}
	return false
}

// ParsePolicy accepts the wire form of a policy. An empty string means FailFast,
// matching a host that has "continue on fail" switched off.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyFailFast, nil
	}
	p := Policy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
	return p, nil
}

// PolicyFromContinueOnFail maps the host's boolean flag to a Policy.
func PolicyFromContinueOnFail(continueOnFail bool) Policy {
	if continueOnFail {
		return PolicyCollectErrors
	}
	return PolicyFailFast
}
