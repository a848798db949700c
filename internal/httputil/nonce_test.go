package httputil

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"
	"text/template"
)

func TestGenerateNonceIsURLSafeBase64Of16Bytes(t *testing.T) {
	nonce := GenerateNonce()
	raw, err := base64.RawURLEncoding.DecodeString(nonce)
	if err != nil {
		t.Fatalf("expected base64url nonce, got %q: %v", nonce, err)
	}
	if len(raw) != nonceSize {
		t.Errorf("expected %d random bytes, got %d", nonceSize, len(raw))
	}
}

func TestGenerateNonceUniquePerPage(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		n := GenerateNonce()
		if seen[n] {
			t.Fatalf("nonce %q repeated", n)
		}
		seen[n] = true
	}
}

func TestNonceRoundTripsThroughRequestContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(ContextWithNonce(req.Context(), "page-nonce"))

	if got := NonceFromContext(req.Context()); got != "page-nonce" {
		t.Errorf("expected %q, got %q", "page-nonce", got)
	}
}

func TestNonceFromContextEmptyForStaticRender(t *testing.T) {
	if got := NonceFromContext(context.Background()); got != "" {
		t.Errorf("expected empty nonce, got %q", got)
	}
}

func TestNonceNeedsNoAttributeEscaping(t *testing.T) {
	nonce := GenerateNonce()
	if escaped := template.HTMLEscapeString(nonce); escaped != nonce {
		t.Errorf("expected nonce to be attribute safe, got %q", escaped)
	}
	if strings.ContainsAny(nonce, "+/=") {
		t.Errorf("expected url-safe alphabet, got %q", nonce)
	}
}
