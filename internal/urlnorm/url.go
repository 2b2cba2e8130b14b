// Package urlnorm wraps net/url with the normalization and TLD-aware
// helpers the crawler core needs, adapted from the teacher's url.go (itself
// built on github.com/PuerkitoBio/purell and golang.org/x/net/publicsuffix,
// the maintained successor of the teacher's defunct
// code.google.com/p/go.net/publicsuffix import).
package urlnorm

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
	"golang.org/x/net/publicsuffix"
)

// Parse parses ref as an absolute or relative URL reference.
func Parse(ref string) (*url.URL, error) {
	return url.Parse(ref)
}

// ParseAndNormalize parses ref and applies Normalize to the result.
func ParseAndNormalize(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	Normalize(u)
	return u, nil
}

// Normalize applies the standard "safe" purell normalization flags plus
// fragment removal, matching the teacher's url.go Normalize method.
func Normalize(u *url.URL) {
	purell.NormalizeURL(u, purell.FlagsSafe|purell.FlagRemoveFragment)
}

// MakeAbsolute resolves u against base if u is not already absolute,
// mirroring the teacher's URL.MakeAbsolute.
func MakeAbsolute(u, base *url.URL) *url.URL {
	if u.IsAbs() {
		return u
	}
	return base.ResolveReference(u)
}

// ToplevelDomainPlusOne returns the effective TLD of host plus one extra
// label, e.g. "www.bbc.co.uk" -> "bbc.co.uk".
func ToplevelDomainPlusOne(host string) (string, error) {
	return publicsuffix.EffectiveTLDPlusOne(stripPort(host))
}

// Subdomain returns the labels of host preceding its TLD+1, or "" if host
// IS its own TLD+1.
func Subdomain(host string) (string, error) {
	h := stripPort(host)
	dom, err := publicsuffix.EffectiveTLDPlusOne(h)
	if err != nil {
		return "", err
	}
	if len(h) == len(dom) {
		return "", nil
	}
	return strings.TrimSuffix(h, "."+dom), nil
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}

// PathSegments splits u.Path (not the query or fragment) on '/' the way
// spec.md §4.3.8d requires for the URL-path-segment token filter:
// lowercased, non-empty segments.
func PathSegments(u *url.URL) []string {
	parts := strings.Split(u.Path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToLower(p))
	}
	return out
}

// DomainLabels splits host on '.' into lowercased labels, for the
// domain-label stopword exception in spec.md §4.3.8e.
func DomainLabels(host string) []string {
	h := strings.ToLower(stripPort(host))
	if h == "" {
		return nil
	}
	return strings.Split(h, ".")
}
