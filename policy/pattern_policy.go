package policy

import (
	"github.com/bmatcuk/doublestar/v4"
)

var _ Policy = (*PatternPolicy)(nil)

// PatternPolicy allows and denies gateway names by glob pattern.
// Deny patterns win over allow patterns; an empty allow list allows all.
type PatternPolicy struct {
	allow   []string
	deny    []string
	handler DenialHandler
}

// PatternPolicyOption configures a PatternPolicy.
type PatternPolicyOption func(*PatternPolicy)

// WithAllowPatterns sets the allow list.
func WithAllowPatterns(patterns ...string) PatternPolicyOption {
	return func(p *PatternPolicy) {
		p.allow = append(p.allow, patterns...)
	}
}

// WithDenyPatterns sets the deny list.
func WithDenyPatterns(patterns ...string) PatternPolicyOption {
	return func(p *PatternPolicy) {
		p.deny = append(p.deny, patterns...)
	}
}

// WithDenialHandler sets the handler notified on denials.
func WithDenialHandler(h DenialHandler) PatternPolicyOption {
	return func(p *PatternPolicy) {
		p.handler = h
	}
}

// NewPatternPolicy creates a PatternPolicy.
func NewPatternPolicy(opts ...PatternPolicyOption) *PatternPolicy {
	p := &PatternPolicy{
		handler: &SlogDenialHandler{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CheckRegistration reports whether name may register, notifying the denial
// handler when it may not.
func (p *PatternPolicy) CheckRegistration(name string) bool {
	if !p.EvaluateRegistration(name) {
		p.handler.OnDenial(name, p.denialReason(name))
		return false
	}
	return true
}

// EvaluateRegistration returns the decision without side effects.
func (p *PatternPolicy) EvaluateRegistration(name string) bool {
	if matchesAny(p.deny, name) {
		return false
	}
	if len(p.allow) == 0 {
		return true
	}
	return matchesAny(p.allow, name)
}

func (p *PatternPolicy) denialReason(name string) string {
	if matchesAny(p.deny, name) {
		return "matches deny pattern"
	}
	return "matches no allow pattern"
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			// A malformed pattern never matches.
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
