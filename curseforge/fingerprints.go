package curseforge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/meza/curseforge-go/internal/perf"
	"github.com/pkg/errors"

	"go.opentelemetry.io/otel/attribute"
)

type getFingerprintsBody struct {
	Fingerprints []int `json:"fingerprints"`
}

type fingerprintMatch struct {
	ModId       int    `json:"id"`
	File        File   `json:"file"`
	LatestFiles []File `json:"latestFiles"`
}

// The API has returned unmatchedFingerprints both as a list and as a map
// keyed by fingerprint, so the polymorphic fields stay raw until decoded.
type fingerprintsMatchResult struct {
	ExactMatches             []fingerprintMatch `json:"exactMatches"`
	ExactFingerprints        json.RawMessage    `json:"exactFingerprints"`
	PartialMatches           []fingerprintMatch `json:"partialMatches"`
	PartialMatchFingerprints json.RawMessage    `json:"partialMatchFingerprints"`
	UnmatchedFingerprints    json.RawMessage    `json:"unmatchedFingerprints"`
	InstalledFingerprints    json.RawMessage    `json:"installedFingerprints"`
	IsCacheBuilt             bool               `json:"isCacheBuilt"`
}

// GetFingerprintsMatches looks up files by their murmur2 fingerprints.
func (curseforgeClient *Client) GetFingerprintsMatches(ctx context.Context, gameId GameId, fingerprints []int) (*FingerprintResult, error) {
	ctx, span := perf.StartSpan(ctx, "api.curseforge.fingerprints.match", perf.WithAttributes(attribute.Int("fingerprints_count", len(fingerprints))))
	defer span.End()

	var response dataResponse[fingerprintsMatchResult]
	err := curseforgeClient.post(ctx, "match fingerprints", fmt.Sprintf("/fingerprints/%d", gameId), getFingerprintsBody{Fingerprints: fingerprints}, &response)
	if err != nil {
		return nil, &FingerprintApiError{
			Lookup: fingerprints,
			Err:    err,
		}
	}

	result := &FingerprintResult{
		Matches:   make([]File, 0),
		Unmatched: make([]int, 0),
	}

	for _, item := range response.Data.ExactMatches {
		result.Matches = append(result.Matches, item.File)
	}

	unmatched, decodeErr := decodeUnmatchedFingerprints(response.Data.UnmatchedFingerprints)
	if decodeErr != nil {
		return nil, &FingerprintApiError{
			Lookup: fingerprints,
			Err:    errors.Wrap(decodeErr, "failed to decode unmatchedFingerprints"),
		}
	}
	result.Unmatched = append(result.Unmatched, unmatched...)

	return result, nil
}

func decodeUnmatchedFingerprints(raw json.RawMessage) ([]int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []int
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var asBoolMap map[string]bool
	if err := json.Unmarshal(raw, &asBoolMap); err == nil {
		return parseUnmatchedMapKeys(asBoolMap)
	}

	var asAnyMap map[string]any
	if err := json.Unmarshal(raw, &asAnyMap); err == nil {
		return parseUnmatchedMapKeys(asAnyMap)
	}

	return nil, errors.Errorf("unsupported type: %s", string(raw))
}

func parseUnmatchedMapKeys[V any](m map[string]V) ([]int, error) {
	out := make([]int, 0, len(m))
	for key := range m {
		value, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out = append(out, value)
	}
	return out, nil
}
