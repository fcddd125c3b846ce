package crawler

import (
	"fmt"
	"net/url"
	"strings"
)

// CanonicalizeSeed turns user input into a fetchable absolute URL.
// Input without an http(s) scheme gets "http://" prepended and any fragment
// is dropped. An unparsable input or one without a host is a configuration
// error. The result is stable under re-canonicalization.
func CanonicalizeSeed(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty seed URL")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(StripFragment(trimmed))
	if err != nil {
		return "", fmt.Errorf("parse seed url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("seed url %q has no host", raw)
	}
	u.Fragment = ""
	return u.String(), nil
}

// RootDomain reduces a URL to scheme plus the last two labels of its host,
// e.g. http://a.b.example.com/x -> http://example.com/. A port stays
// attached to the last label so host comparisons against the result keep
// working. It returns "" when the URL has no usable host.
func RootDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	labels := strings.Split(u.Host, ".")
	if len(labels) > 2 {
		labels = labels[len(labels)-2:]
	}
	root := url.URL{Scheme: u.Scheme, Host: strings.Join(labels, "."), Path: "/"}
	return root.String()
}

// StripFragment removes the "#..." suffix and nothing else.
func StripFragment(rawURL string) string {
	base, _, _ := strings.Cut(rawURL, "#")
	return base
}

// IsRelative reports whether the URL has no network location, i.e. it must
// be resolved against a base before fetching.
func IsRelative(rawURL string) bool {
	u, err := url.Parse(rawURL)
	return err == nil && u.Host == ""
}

// Resolve performs standard RFC 3986 reference resolution of ref against
// base. An absolute ref comes back unchanged; unparsable input comes back
// as-is for the skip predicate to deal with.
func Resolve(ref, base string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// SameHost reports whether rawURL lives on exactly the host of rootURL.
// Both hosts must be non-empty. This is deliberately stricter than the
// two-label derivation in RootDomain: pages on a subdomain of the root are
// probed, not crawled.
func SameHost(rawURL, rootURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	root, err := url.Parse(rootURL)
	if err != nil {
		return false
	}
	return u.Host != "" && u.Host == root.Host
}

// SkipLink reports whether a discovered href should never enter the
// frontier: empty after fragment stripping, unparsable, or carrying a
// non-fetchable scheme (javascript:, mailto:, whatsapp:, tel:, ...).
func SkipLink(rawURL string) bool {
	if rawURL == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	if u.Scheme == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme != "http" && scheme != "https"
}
