package server

import (
	"net"
	"net/http"
	"strings"
)

// hostGroup is one set of routes reachable through the subdomains it matches
type hostGroup struct {
	name    string
	match   func(subdomain string) bool
	handler http.Handler
}

// HostRouter dispatches on the subdomain left of the configured server name
type HostRouter struct {
	serverName string
	groups     []hostGroup
	notFound   http.Handler
}

// NewHostRouter creates a dispatcher for hosts under serverName
func NewHostRouter(serverName string, notFound http.Handler) *HostRouter {
	return &HostRouter{
		serverName: serverName,
		notFound:   notFound,
	}
}

// Handle routes the exact subdomain label to handler
func (h *HostRouter) Handle(subdomain string, handler http.Handler) {
	h.HandleFunc(subdomain, func(s string) bool { return s == subdomain }, handler)
}

// HandleFunc routes every subdomain accepted by match to handler
func (h *HostRouter) HandleFunc(name string, match func(subdomain string) bool, handler http.Handler) {
	h.groups = append(h.groups, hostGroup{name: name, match: match, handler: handler})
}

// ServeHTTP picks the first group whose predicate accepts the subdomain
func (h *HostRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subdomain, ok := Subdomain(r.Host, h.serverName)
	if ok {
		for _, g := range h.groups {
			if g.match(subdomain) {
				g.handler.ServeHTTP(w, r)
				return
			}
		}
	}
	h.notFound.ServeHTTP(w, r)
}

// Subdomain strips the port and ".serverName" from host. Matching is case-sensitive.
func Subdomain(host, serverName string) (string, bool) {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	suffix := "." + serverName
	if !strings.HasSuffix(host, suffix) {
		return "", false
	}

	subdomain := strings.TrimSuffix(host, suffix)
	if subdomain == "" {
		return "", false
	}
	return subdomain, true
}

// IsPingHost matches the ten load-balancing aliases 0.ping … 9.ping
func IsPingHost(subdomain string) bool {
	return len(subdomain) == len("0.ping") &&
		subdomain[0] >= '0' && subdomain[0] <= '9' &&
		subdomain[1:] == ".ping"
}
