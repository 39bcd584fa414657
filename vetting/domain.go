package vetting

import (
	"net"
	"net/url"
	"strings"
)

// NormalizeDomain reduces a user-supplied URL to a bare hostname.
// Inputs without a scheme (example.com/page) fall back to the text before the
// first path, query or fragment separator. A leading "www." is removed.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)

	host := ""
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Hostname()
	}

	if host == "" {
		host = raw
		if i := strings.Index(host, "://"); i >= 0 {
			host = host[i+3:]
		}
		if i := strings.IndexAny(host, "/?#"); i >= 0 {
			host = host[:i]
		}
		if i := strings.LastIndex(host, "@"); i >= 0 {
			host = host[i+1:]
		}
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
	}

	return strings.TrimPrefix(host, "www.")
}
