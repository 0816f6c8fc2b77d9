package clientctx

import "context"

// Context key type
type contextKey string

const clientAddressKey contextKey = "client_address"

// SetClientAddress adds the resolved client address to the request context
func SetClientAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, clientAddressKey, address)
}

// GetClientAddress retrieves the resolved client address from the request context
func GetClientAddress(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(clientAddressKey).(string)
	if !ok || address == "" {
		return "", false
	}
	return address, true
}
