package curseforge

import (
	"context"
	"os"

	curseforgeFingerprint "github.com/meza/curseforge-fingerprint-go"
	"github.com/pkg/errors"
)

// FingerprintFile computes the murmur2 fingerprint of a local file, in the
// normalized form the fingerprint match endpoint expects. The stat check
// runs first because the hash library reports unreadable files as 0.
func FingerprintFile(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, errors.Wrapf(err, "cannot fingerprint %s", path)
	}

	return int(curseforgeFingerprint.GetFingerprintFor(path)), nil
}

// GetFingerprintsMatchesForFiles fingerprints local files and looks them up
// in a single call. The result does not say which path produced which
// fingerprint, so callers needing that mapping should use FingerprintFile
// and GetFingerprintsMatches directly.
func (curseforgeClient *Client) GetFingerprintsMatchesForFiles(ctx context.Context, gameId GameId, paths []string) (*FingerprintResult, error) {
	fingerprints := make([]int, 0, len(paths))
	for _, path := range paths {
		fingerprint, err := FingerprintFile(path)
		if err != nil {
			return nil, err
		}
		fingerprints = append(fingerprints, fingerprint)
	}

	return curseforgeClient.GetFingerprintsMatches(ctx, gameId, fingerprints)
}
