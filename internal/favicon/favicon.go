// Package favicon maps bookmark urls to icon images, either straight from a
// public favicon service or through a small caching proxy.
package favicon

import (
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTemplate is the Google s2 favicon service.
	DefaultTemplate = "https://www.google.com/s2/favicons?domain={host}&sz=64"
	// HostPlaceholder is replaced by the bookmark's hostname.
	HostPlaceholder = "{host}"
	// ProxyPath is the local route serving proxied icons.
	ProxyPath = "/favicon/"

	defaultTimeout   = 5 * time.Second
	defaultCacheSize = 256
)

// Config implements the favicon settings.
type Config struct {
	Template  string        // upstream icon url, {host} is replaced by the hostname
	Proxy     bool          // serve icons through the local proxy route
	Timeout   time.Duration // upstream fetch timeout
	CacheSize int           // number of hosts kept in memory
}

// Resolver turns a bookmark url into an icon url.
type Resolver struct {
	template string
	proxy    bool
}

// NewResolver returns a resolver. An empty template selects DefaultTemplate.
func NewResolver(cfg Config) *Resolver {
	t := cfg.Template
	if t == "" {
		t = DefaultTemplate
	}

	return &Resolver{template: t, proxy: cfg.Proxy}
}

// URL returns the icon url for target, or false when target has no hostname.
func (r *Resolver) URL(target string) (string, bool) {
	host := Hostname(target)
	if host == "" {
		return "", false
	}

	if r.proxy {
		return ProxyPath + url.PathEscape(host), true
	}

	return Upstream(r.template, host), true
}

// Hostname extracts the host of an absolute url, without port.
func Hostname(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}

	return u.Hostname()
}

// Upstream fills the host into a url template.
func Upstream(template, host string) string {
	return strings.ReplaceAll(template, HostPlaceholder, url.QueryEscape(host))
}
