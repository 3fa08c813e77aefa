package xhttp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/miband/internal/version"
)

type mibandTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*mibandTransport)(nil)

func (t *mibandTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	if req.Header.Get(XRequestID) == "" {
		req.Header.Set(XRequestID, uuid.NewString())
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard miband headers.
func NewTransport() http.RoundTripper {
	return NewTransportWithBase(http.DefaultTransport)
}

func NewTransportWithBase(base http.RoundTripper) http.RoundTripper {
	return &mibandTransport{base: base}
}
