package httpclient

import (
	"context"
	"io"
	"net/http"

	"github.com/meza/curseforge-go/internal/perf"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
)

// ProgressFunc receives the downloaded ratio in the range 0..1. It is only
// called when the server reports a content length.
type ProgressFunc func(ratio float64)

type DownloadOption func(*downloadConfig)

type downloadConfig struct {
	filesystem afero.Fs
	onProgress ProgressFunc
}

func WithFilesystem(filesystem afero.Fs) DownloadOption {
	return func(config *downloadConfig) {
		config.filesystem = filesystem
	}
}

func WithProgress(onProgress ProgressFunc) DownloadOption {
	return func(config *downloadConfig) {
		config.onProgress = onProgress
	}
}

type progressWriter struct {
	total      int
	downloaded int
	onProgress ProgressFunc
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	pw.downloaded += len(p)
	if pw.total > 0 && pw.onProgress != nil {
		pw.onProgress(float64(pw.downloaded) / float64(pw.total))
	}
	return len(p), nil
}

// DownloadFile streams the response body for url into path. The download
// timeout applies unless ctx carries an earlier deadline.
func DownloadFile(ctx context.Context, client Doer, url string, path string, options ...DownloadOption) (returnErr error) {
	config := downloadConfig{filesystem: afero.NewOsFs()}
	for _, option := range options {
		option(&config)
	}

	ctx, span := perf.StartSpan(ctx, "net.http.download", perf.WithAttributes(attribute.String("url", url)))
	defer span.End()

	timeoutCtx, cancel := WithDownloadTimeout(ctx)
	defer cancel()

	request, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build download request")
	}

	response, err := client.Do(request)
	if err != nil {
		return errors.Wrap(WrapTimeoutError(err), "failed to download file")
	}
	defer func() {
		if closeErr := response.Body.Close(); closeErr != nil && returnErr == nil {
			returnErr = closeErr
		}
	}()

	if response.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status code: %d", response.StatusCode)
	}

	file, err := config.filesystem.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && returnErr == nil {
			returnErr = closeErr
		}
	}()

	pw := &progressWriter{
		total:      int(response.ContentLength),
		onProgress: config.onProgress,
	}

	if _, err := io.Copy(file, io.TeeReader(response.Body, pw)); err != nil {
		return errors.Wrap(err, "failed to write file")
	}

	return nil
}
