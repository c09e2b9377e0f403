package curseforge

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"

	"github.com/meza/curseforge-go/httpclient"
)

type errorDoer struct {
	err error
}

func (d errorDoer) Do(_ *http.Request) (*http.Response, error) {
	return nil, d.err
}

func writeStringResponse(t *testing.T, writer http.ResponseWriter, payload string) {
	t.Helper()
	if _, err := writer.Write([]byte(payload)); err != nil {
		t.Fatalf("write string response: %v", err)
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mockServer := httptest.NewServer(handler)
	t.Cleanup(mockServer.Close)
	return mockServer
}

// newTestClient points a client with a plain transport at a test server.
func newTestClient(t *testing.T, mockServer *httptest.Server, options ...Option) *Client {
	t.Helper()
	doer := httpclient.NewRLClient(rate.NewLimiter(rate.Inf, 1))
	doer.RetryConfig = httpclient.NoRetries()
	options = append([]Option{WithBaseURL(mockServer.URL), WithAPIKey("mock_curseforge_api_key")}, options...)
	return NewClient(doer, options...)
}
