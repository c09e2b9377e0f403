package curseforge

import (
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestModDecodeSnapshot(t *testing.T) {
	var mod Mod
	require.NoError(t, json.Unmarshal([]byte(mockModPayload), &mod))
	snaps.MatchSnapshot(t, mod)
}

func TestFileDecodeSnapshot(t *testing.T) {
	var file File
	require.NoError(t, json.Unmarshal([]byte(mockFilePayload(4712858)), &file))
	snaps.MatchSnapshot(t, file)
}
