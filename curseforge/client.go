package curseforge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/meza/curseforge-go/environment"
	"github.com/meza/curseforge-go/httpclient"
	"github.com/meza/curseforge-go/internal/perf"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"go.opentelemetry.io/otel/attribute"
)

type Client struct {
	client  httpclient.Doer
	baseURL string
	apiKey  string
	logger  zerolog.Logger
	strict  bool
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		client.baseURL = baseURL
	}
}

func WithAPIKey(apiKey string) Option {
	return func(client *Client) {
		client.apiKey = apiKey
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithStrictDecoding makes the client reject response payloads containing
// fields this library does not know about. Useful in tests to detect schema
// drift; the default is to ignore unknown fields.
func WithStrictDecoding() Option {
	return func(client *Client) {
		client.strict = true
	}
}

// NewClient wraps doer with CurseForge authentication and decoding. A nil
// doer falls back to the shared rate-limited client. The API key and base URL
// default to the environment configuration.
func NewClient(doer httpclient.Doer, options ...Option) *Client {
	client := &Client{
		client:  doer,
		baseURL: environment.CurseforgeAPIBase(),
		apiKey:  environment.CurseforgeAPIKey(),
		logger:  zerolog.Nop(),
	}
	if client.client == nil {
		client.client = httpclient.NewDefaultClient()
	}
	for _, option := range options {
		option(client)
	}
	return client
}

func (curseforgeClient *Client) Do(request *http.Request) (*http.Response, error) {
	ctx, span := perf.StartSpan(request.Context(), "api.curseforge.http.request", perf.WithAttributes(attribute.String("url", request.URL.String())))
	defer span.End()
	headers := map[string]string{
		"Accept":    "application/json",
		"x-api-key": curseforgeClient.apiKey,
	}

	for key, value := range headers {
		request.Header.Add(key, value)
	}

	curseforgeClient.logger.Debug().
		Str("method", request.Method).
		Str("url", request.URL.String()).
		Msg("curseforge api request")

	return curseforgeClient.client.Do(request.WithContext(ctx))
}

// get issues a GET for path, appends query when present, and decodes the
// response into out. A 404 surfaces as notFound when one is supplied.
func (curseforgeClient *Client) get(ctx context.Context, operation string, path string, query string, notFound error, out any) error {
	url := curseforgeClient.baseURL + path
	if query != "" {
		url += "?" + query
	}

	timeoutCtx, cancel := httpclient.WithMetadataTimeout(ctx)
	defer cancel()
	request, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	return curseforgeClient.send(operation, request, notFound, out)
}

// post marshals body as JSON and decodes the response into out.
func (curseforgeClient *Client) post(ctx context.Context, operation string, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request body")
	}

	timeoutCtx, cancel := httpclient.WithMetadataTimeout(ctx)
	defer cancel()
	request, err := http.NewRequestWithContext(timeoutCtx, http.MethodPost, curseforgeClient.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Add("Content-Type", "application/json")

	return curseforgeClient.send(operation, request, nil, out)
}

func (curseforgeClient *Client) send(operation string, request *http.Request, notFound error, out any) (returnErr error) {
	response, err := curseforgeClient.Do(request)
	if err != nil {
		if httpclient.IsTimeoutError(err) {
			return httpclient.WrapTimeoutError(err)
		}
		return &ApiError{Operation: operation, Err: err}
	}
	defer func() {
		if closeErr := response.Body.Close(); closeErr != nil && returnErr == nil {
			returnErr = closeErr
		}
	}()

	if response.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}

	if response.StatusCode != http.StatusOK {
		return &ApiError{
			Operation:  operation,
			StatusCode: response.StatusCode,
			Err:        errors.Errorf("unexpected status code: %d", response.StatusCode),
		}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return &ApiError{Operation: operation, Err: errors.Wrap(err, "failed to read response body")}
	}

	return curseforgeClient.decode(operation, body, out)
}

func (curseforgeClient *Client) decode(operation string, body []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	if curseforgeClient.strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(out); err != nil {
		return &DecodeError{
			Operation: operation,
			Body:      body,
			Err:       errors.Wrap(err, "failed to decode response body"),
		}
	}
	return nil
}
