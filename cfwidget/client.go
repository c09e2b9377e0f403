package cfwidget

import (
	"net/http"

	"github.com/meza/curseforge-go/environment"
	"github.com/meza/curseforge-go/httpclient"
	"github.com/meza/curseforge-go/internal/perf"
	"github.com/rs/zerolog"

	"go.opentelemetry.io/otel/attribute"
)

const userAgent = "github.com/meza/curseforge-go"

type Client struct {
	client  httpclient.Doer
	baseURL string
	logger  zerolog.Logger
	strict  bool
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		client.baseURL = baseURL
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithStrictDecoding makes the client reject response payloads containing
// unknown fields.
func WithStrictDecoding() Option {
	return func(client *Client) {
		client.strict = true
	}
}

// NewClient wraps doer for the CFWidget API. No API key is needed. A nil
// doer falls back to the shared rate-limited client.
func NewClient(doer httpclient.Doer, options ...Option) *Client {
	client := &Client{
		client:  doer,
		baseURL: environment.CFWidgetAPIBase(),
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

func (widgetClient *Client) Do(request *http.Request) (*http.Response, error) {
	ctx, span := perf.StartSpan(request.Context(), "api.cfwidget.http.request", perf.WithAttributes(attribute.String("url", request.URL.String())))
	defer span.End()
	headers := map[string]string{
		"Accept":     "application/json",
		"user-agent": userAgent,
	}

	for key, value := range headers {
		request.Header.Add(key, value)
	}

	widgetClient.logger.Debug().
		Str("method", request.Method).
		Str("url", request.URL.String()).
		Msg("cfwidget api request")

	return widgetClient.client.Do(request.WithContext(ctx))
}
