package api

import (
	"net/http"

	"pathshala/internal/common"
)

// TokenSource is the subset of the session manager the transport needs.
// An unreadable store must yield "" rather than an error.
type TokenSource interface {
	Token() string
}

// authTransport decorates every outgoing request with the persisted bearer
// token. Without a token the request is forwarded untouched; the server's
// 401 is the correct failure surface for unauthenticated calls.
type authTransport struct {
	tokens TokenSource
	base   http.RoundTripper
}

// NewAuthTransport wraps base so that each request carries
// "Authorization: Bearer <token>" whenever a token is present. base may be
// nil, in which case http.DefaultTransport is used.
func NewAuthTransport(tokens TokenSource, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{tokens: tokens, base: base}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.tokens.Token()
	if token == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	return t.base.RoundTrip(clone)
}
