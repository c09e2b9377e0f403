package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurseforgeAPIKey(t *testing.T) {
	t.Run("environment variable set", func(t *testing.T) {
		expected := "test_curseforge_api_key"
		t.Setenv("CURSEFORGE_API_KEY", expected)

		actual := CurseforgeAPIKey()
		assert.Equal(t, expected, actual)
	})

	t.Run("environment variable not set", func(t *testing.T) {
		os.Unsetenv("CURSEFORGE_API_KEY")

		actual := CurseforgeAPIKey()
		assert.Empty(t, actual)
	})
}

func TestCurseforgeAPIBase(t *testing.T) {
	t.Run("environment variable set", func(t *testing.T) {
		expected := "http://localhost:8080/v1"
		t.Setenv("CURSEFORGE_API_URL", expected)

		actual := CurseforgeAPIBase()
		assert.Equal(t, expected, actual)
	})

	t.Run("environment variable not set", func(t *testing.T) {
		os.Unsetenv("CURSEFORGE_API_URL")

		actual := CurseforgeAPIBase()
		assert.Equal(t, "https://api.curseforge.com/v1", actual)
	})
}

func TestCFWidgetAPIBase(t *testing.T) {
	t.Run("environment variable set", func(t *testing.T) {
		expected := "http://localhost:8080"
		t.Setenv("CFWIDGET_API_URL", expected)

		actual := CFWidgetAPIBase()
		assert.Equal(t, expected, actual)
	})

	t.Run("environment variable not set", func(t *testing.T) {
		os.Unsetenv("CFWIDGET_API_URL")

		actual := CFWidgetAPIBase()
		assert.Equal(t, "https://api.cfwidget.com", actual)
	})
}

func TestLoadDotenv(t *testing.T) {
	t.Run("no dotenv file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		assert.NoError(t, LoadDotenv())
	})

	t.Run("dotenv file present", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CURSEFORGE_API_KEY=from_dotenv\n"), 0o600))
		t.Chdir(dir)
		os.Unsetenv("CURSEFORGE_API_KEY")
		t.Cleanup(func() { os.Unsetenv("CURSEFORGE_API_KEY") })

		require.NoError(t, LoadDotenv())
		assert.Equal(t, "from_dotenv", CurseforgeAPIKey())
	})
}
