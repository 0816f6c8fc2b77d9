package middleware

import (
	"net"
	"net/http"

	"github.com/blogem/boxee-legacy-api/clientctx"
	"github.com/blogem/boxee-legacy-api/models"
)

// TrustedProxies is the set of hops whose forwarding headers are believed
type TrustedProxies map[string]struct{}

// NewTrustedProxies builds the set from a list of addresses
func NewTrustedProxies(addresses []string) TrustedProxies {
	set := make(TrustedProxies, len(addresses))
	for _, a := range addresses {
		set[a] = struct{}{}
	}
	return set
}

// Contains reports whether address is a trusted hop
func (t TrustedProxies) Contains(address string) bool {
	_, ok := t[address]
	return ok
}

// ResolveClientAddress walks [forwarded..., peer] from the end and returns the
// first address that is not a trusted proxy. If every hop is trusted it returns peer.
// forwarded is in the order proxies appended it: original client first.
func ResolveClientAddress(forwarded []string, peer string, trusted TrustedProxies) string {
	route := append(append([]string{}, forwarded...), peer)
	for i := len(route) - 1; i >= 0; i-- {
		if !trusted.Contains(route[i]) {
			return route[i]
		}
	}
	return peer
}

// ResolveClient stores the resolved client address in the request context
func ResolveClient(trusted TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := clientctx.SetClientAddress(r.Context(), ClientAddress(r, trusted))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientAddress returns the address stored by ResolveClient, or resolves it
// from X-Forwarded-For and RemoteAddr
func ClientAddress(r *http.Request, trusted TrustedProxies) string {
	if address, ok := clientctx.GetClientAddress(r.Context()); ok {
		return address
	}

	var forwarded []string
	for _, header := range r.Header.Values("X-Forwarded-For") {
		forwarded = append(forwarded, models.ParseAddressList(header)...)
	}
	return ResolveClientAddress(forwarded, peerAddress(r), trusted)
}

// peerAddress strips the port from RemoteAddr
func peerAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
