package transport

import (
	"net/http"
	"testing"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "https://api.v0.dev/v1/user", nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestBearerAuth(t *testing.T) {
	req := newRequest(t)
	(&BearerAuth{}).Apply(req, "v1:key")

	if got := req.Header.Get("Authorization"); got != "Bearer v1:key" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestHeaderAuth(t *testing.T) {
	req := newRequest(t)
	(&HeaderAuth{Header: "X-API-Key"}).Apply(req, "v1:key")

	if got := req.Header.Get("X-API-Key"); got != "v1:key" {
		t.Errorf("X-API-Key = %q", got)
	}
}

func TestNoAuth(t *testing.T) {
	req := newRequest(t)
	(&NoAuth{}).Apply(req, "v1:key")

	if len(req.Header) != 0 {
		t.Errorf("NoAuth should not set headers, got %v", req.Header)
	}
}
