package clientctx

import (
	"context"
	"testing"
)

func TestClientAddressRoundTrip(t *testing.T) {
	ctx := SetClientAddress(context.Background(), "1.2.3.4")

	address, ok := GetClientAddress(ctx)
	if !ok || address != "1.2.3.4" {
		t.Errorf("Expected 1.2.3.4, got %q (ok=%v)", address, ok)
	}

	if _, ok := GetClientAddress(context.Background()); ok {
		t.Error("Expected no address on a bare context")
	}
}
