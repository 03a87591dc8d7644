package pages

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature("", zap.NewNop())

	assert.Equal(t, "pages", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestLoader_PublicDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexPage), []byte("<h1>custom</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReadPage), []byte("<h1>custom reader</h1>"), 0o644))

	app := fiber.New()
	require.NoError(t, NewFeature(dir, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/read", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestLoader_PublicDirMissingPage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexPage), []byte("<h1>only index</h1>"), 0o644))

	err := NewFeature(dir, zap.NewNop()).Load(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ReadPage)
}
