package cfwidget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/meza/curseforge-go/httpclient"
	"github.com/meza/curseforge-go/internal/perf"
	"github.com/pkg/errors"

	"go.opentelemetry.io/otel/attribute"
)

// GetProject looks up a project by its numeric CurseForge id.
func (widgetClient *Client) GetProject(ctx context.Context, projectId int) (*Project, error) {
	return widgetClient.getProject(ctx, strconv.Itoa(projectId))
}

// GetProjectByPath looks up a project by its CurseForge site path, e.g.
// "minecraft/mc-mods/jei".
func (widgetClient *Client) GetProjectByPath(ctx context.Context, path string) (*Project, error) {
	return widgetClient.getProject(ctx, strings.Trim(path, "/"))
}

func (widgetClient *Client) getProject(ctx context.Context, lookup string) (project *Project, returnErr error) {
	ctx, span := perf.StartSpan(ctx, "api.cfwidget.project.get", perf.WithAttributes(attribute.String("lookup", lookup)))
	defer span.End()

	url := fmt.Sprintf("%s/%s", widgetClient.baseURL, lookup)
	timeoutCtx, cancel := httpclient.WithMetadataTimeout(ctx)
	defer cancel()
	request, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := widgetClient.Do(request)
	if err != nil {
		if httpclient.IsTimeoutError(err) {
			return nil, httpclient.WrapTimeoutError(err)
		}
		return nil, &ApiError{Lookup: lookup, Err: err}
	}
	defer func() {
		if closeErr := response.Body.Close(); closeErr != nil && returnErr == nil {
			returnErr = closeErr
		}
	}()

	switch response.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusAccepted:
		return nil, &ProjectPendingError{Lookup: lookup}
	case http.StatusNotFound:
		return nil, &ProjectNotFoundError{Lookup: lookup}
	default:
		return nil, &ApiError{
			Lookup:     lookup,
			StatusCode: response.StatusCode,
			Err:        errors.Errorf("unexpected status code: %d", response.StatusCode),
		}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ApiError{Lookup: lookup, Err: errors.Wrap(err, "failed to read response body")}
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	if widgetClient.strict {
		decoder.DisallowUnknownFields()
	}

	var decodedProject Project
	if err := decoder.Decode(&decodedProject); err != nil {
		return nil, &ApiError{Lookup: lookup, Err: errors.Wrap(err, "failed to decode response body")}
	}

	return &decodedProject, nil
}
