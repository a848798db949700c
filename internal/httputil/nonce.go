package httputil

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// nonceSize is the raw entropy behind each CSP nonce.
const nonceSize = 16

type nonceCtxKey struct{}

// GenerateNonce returns a fresh base64url nonce for one response's inline
// script and style tags. crypto/rand.Read cannot fail on supported platforms.
func GenerateNonce() string {
	var b [nonceSize]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func ContextWithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceCtxKey{}, nonce)
}

// NonceFromContext is empty outside a request, which static renders rely on.
func NonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceCtxKey{}).(string)
	return nonce
}
