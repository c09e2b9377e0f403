package curseforge

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meza/curseforge-go/internal/perf"
)

func TestRequestsEmitSpans(t *testing.T) {
	exporter, restore := perf.InstallExporter()
	defer restore()

	mockServer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeStringResponse(t, w, `{
  "data": {
    "id": 432,
    "name": "Minecraft",
    "slug": "minecraft",
    "dateModified": "2023-10-01T12:00:00Z",
    "assets": {"iconUrl": "", "tileUrl": "", "coverUrl": ""},
    "status": 6,
    "apiStatus": 2
  }
}`)
	})

	client := newTestClient(t, mockServer)
	_, err := client.GetGame(context.Background(), Minecraft)
	require.NoError(t, err)

	names := exporter.SpanNames()
	assert.Contains(t, names, "api.curseforge.game.get")
	assert.Contains(t, names, "api.curseforge.http.request")
	assert.Contains(t, names, "net.http.request.attempt")
}
