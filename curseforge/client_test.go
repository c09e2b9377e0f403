package curseforge

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/meza/curseforge-go/httpclient"
)

// MockDoer is a mock implementation of the httpclient.Doer interface
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func TestClient_Do(t *testing.T) {
	mockDoer := new(MockDoer)
	mockDoer.On("Do", mock.Anything).Return(&http.Response{StatusCode: 200}, nil)

	client := NewClient(mockDoer, WithAPIKey("test-api-key"))

	req, err := http.NewRequest(http.MethodGet, "https://api.curseforge.com/v1/mods/238222", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "test-api-key", req.Header.Get("x-api-key"))

	mockDoer.AssertCalled(t, "Do", mock.MatchedBy(func(r *http.Request) bool {
		if r == nil {
			return false
		}
		return r.Method == req.Method &&
			r.URL.String() == req.URL.String() &&
			r.Header.Get("Accept") == "application/json" &&
			r.Header.Get("x-api-key") == "test-api-key"
	}))
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv("CURSEFORGE_API_KEY", "from-environment")

	client := NewClient(nil)
	require.NotNil(t, client.client)
	assert.Equal(t, "https://api.curseforge.com/v1", client.baseURL)
	assert.Equal(t, "from-environment", client.apiKey)
	assert.False(t, client.strict)
}

func TestNewClientOptions(t *testing.T) {
	client := NewClient(errorDoer{}, WithBaseURL("http://localhost:9999/v1"), WithAPIKey("key"), WithStrictDecoding())
	assert.Equal(t, "http://localhost:9999/v1", client.baseURL)
	assert.Equal(t, "key", client.apiKey)
	assert.True(t, client.strict)
}

func TestTransportErrorsBecomeApiErrors(t *testing.T) {
	boom := errors.New("connection refused")
	client := NewClient(errorDoer{err: boom}, WithBaseURL("http://localhost:9999/v1"), WithAPIKey("key"))

	_, err := client.GetMod(context.Background(), 238222)
	require.Error(t, err)

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "get mod", apiErr.Operation)
	assert.ErrorIs(t, apiErr, boom)
}

func TestTimeoutErrorsPassThrough(t *testing.T) {
	client := NewClient(errorDoer{err: context.DeadlineExceeded}, WithBaseURL("http://localhost:9999/v1"), WithAPIKey("key"))

	_, err := client.GetMod(context.Background(), 238222)
	require.Error(t, err)

	var timeoutErr *httpclient.TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}

func TestUnexpectedStatusCode(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, mockServer)
	_, err := client.GetMod(context.Background(), 238222)
	require.Error(t, err)

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestMalformedResponseBody(t *testing.T) {
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeStringResponse(t, w, `{"data": {`)
	})

	client := newTestClient(t, mockServer)
	_, err := client.GetMod(context.Background(), 238222)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "get mod", decodeErr.Operation)
	assert.Equal(t, []byte(`{"data": {`), decodeErr.Body)
}

func TestStrictDecodingRejectsUnknownFields(t *testing.T) {
	payload := `{"data": {"id": 238222, "gameId": 432, "name": "JEI", "surpriseField": true}}`
	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeStringResponse(t, w, payload)
	})

	t.Run("default mode ignores unknown fields", func(t *testing.T) {
		client := newTestClient(t, mockServer)
		mod, err := client.GetMod(context.Background(), 238222)
		require.NoError(t, err)
		assert.Equal(t, "JEI", mod.Name)
	})

	t.Run("strict mode rejects unknown fields", func(t *testing.T) {
		client := newTestClient(t, mockServer, WithStrictDecoding())
		_, err := client.GetMod(context.Background(), 238222)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Err.Error(), "surpriseField")
	})
}
