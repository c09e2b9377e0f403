package curseforge

import (
	"context"
	"fmt"
	"strconv"

	"github.com/meza/curseforge-go/internal/perf"
	"github.com/pkg/errors"

	"go.opentelemetry.io/otel/attribute"
)

// GetModFile fetches a single file of a mod.
func (curseforgeClient *Client) GetModFile(ctx context.Context, modId int, fileId int) (*File, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mod.file.get",
		perf.WithAttributes(
			attribute.Int("mod_id", modId),
			attribute.Int("file_id", fileId),
		),
	)
	defer span.End()

	var response dataResponse[File]
	notFound := &NotFoundError{Resource: "file", Id: strconv.Itoa(fileId)}
	if err := curseforgeClient.get(ctx, "get mod file", fmt.Sprintf("/mods/%d/files/%d", modId, fileId), "", notFound, &response); err != nil {
		return nil, err
	}

	return &response.Data, nil
}

// GetModFiles fetches one page of a mod's file list.
func (curseforgeClient *Client) GetModFiles(ctx context.Context, modId int, params *ModFilesParams) (*Page[File], error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mod.files.list",
		perf.WithAttributes(
			attribute.Int("mod_id", modId),
		),
	)
	defer span.End()

	queryString, err := encodeParams(params)
	if err != nil {
		return nil, err
	}

	var page Page[File]
	notFound := &NotFoundError{Resource: "mod", Id: strconv.Itoa(modId)}
	if err := curseforgeClient.get(ctx, "get mod files", fmt.Sprintf("/mods/%d/files", modId), queryString, notFound, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetModFilesAll walks every page of a mod's file list up to the API's
// result limit.
func (curseforgeClient *Client) GetModFilesAll(ctx context.Context, modId int, params *ModFilesParams) ([]File, error) {
	pageParams := ModFilesParams{}
	if params != nil {
		pageParams = *params
	}

	return paginateAll(ctx, func(ctx context.Context, index int) (*Page[File], error) {
		pageParams.Index = index
		return curseforgeClient.GetModFiles(ctx, modId, &pageParams)
	})
}

// GetFiles fetches several files by id in a single call, without needing
// their mod ids.
func (curseforgeClient *Client) GetFiles(ctx context.Context, fileIds []int) ([]File, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.files.get", perf.WithAttributes(attribute.Int("file_count", len(fileIds))))
	defer span.End()

	var response dataResponse[[]File]
	if err := curseforgeClient.post(ctx, "get files", "/mods/files", getFilesBody{FileIds: fileIds}, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetFileByID is a convenience wrapper over GetFiles for a single file id.
func (curseforgeClient *Client) GetFileByID(ctx context.Context, fileId int) (*File, error) {
	files, err := curseforgeClient.GetFiles(ctx, []int{fileId})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &NotFoundError{Resource: "file", Id: strconv.Itoa(fileId)}
	}
	if len(files) > 1 {
		return nil, &ApiError{
			Operation: "get files",
			Err:       errors.Errorf("expected a single file, got %d", len(files)),
		}
	}

	return &files[0], nil
}

// GetFileChangelog fetches the HTML changelog of a file.
func (curseforgeClient *Client) GetFileChangelog(ctx context.Context, modId int, fileId int) (string, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mod.file.changelog",
		perf.WithAttributes(
			attribute.Int("mod_id", modId),
			attribute.Int("file_id", fileId),
		),
	)
	defer span.End()

	var response dataResponse[string]
	notFound := &NotFoundError{Resource: "file", Id: strconv.Itoa(fileId)}
	if err := curseforgeClient.get(ctx, "get file changelog", fmt.Sprintf("/mods/%d/files/%d/changelog", modId, fileId), "", notFound, &response); err != nil {
		return "", err
	}

	return response.Data, nil
}

// GetFileDownloadURL resolves the download URL of a file. The API returns
// null for files whose authors opted out of distribution, which surfaces as
// an empty string.
func (curseforgeClient *Client) GetFileDownloadURL(ctx context.Context, modId int, fileId int) (string, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.mod.file.downloadurl",
		perf.WithAttributes(
			attribute.Int("mod_id", modId),
			attribute.Int("file_id", fileId),
		),
	)
	defer span.End()

	var response dataResponse[string]
	notFound := &NotFoundError{Resource: "file", Id: strconv.Itoa(fileId)}
	if err := curseforgeClient.get(ctx, "get file download url", fmt.Sprintf("/mods/%d/files/%d/download-url", modId, fileId), "", notFound, &response); err != nil {
		return "", err
	}

	return response.Data, nil
}
