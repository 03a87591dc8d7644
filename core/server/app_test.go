package server_test

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"text-share/core/loader"
	"text-share/core/middleware/auth"
	"text-share/core/middleware/rayid"
	"text-share/core/server"
	"text-share/feature/pages"
	"text-share/feature/text"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestApp(t *testing.T, cfg server.Config) *fiber.App {
	t.Helper()
	logg := zap.NewNop()

	mgr := loader.NewManager()
	mgr.Register(text.NewFeature(text.NewStore(), logg))
	mgr.Register(pages.NewFeature("", logg))

	app, err := server.NewApp(cfg, logg, mgr)
	require.NoError(t, err)
	return app
}

func postText(t *testing.T, app *fiber.App, body, key string) *httpResponse {
	t.Helper()
	req := httptest.NewRequest("POST", "/submit-text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(auth.HeaderName, key)
	}
	return do(t, app, req)
}

type httpResponse struct {
	status int
	header func(string) string
	body   string
}

func do(t *testing.T, app *fiber.App, req *http.Request) *httpResponse {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return &httpResponse{status: resp.StatusCode, header: resp.Header.Get, body: string(body)}
}

func TestNewApp_RoundTrip(t *testing.T) {
	app := setupTestApp(t, server.Config{})

	res := do(t, app, httptest.NewRequest("GET", "/get-text", nil))
	assert.Equal(t, 200, res.status)
	assert.JSONEq(t, `{"text":""}`, res.body)

	res = postText(t, app, `{"text":"hello"}`, "")
	assert.Equal(t, 200, res.status)
	assert.JSONEq(t, `{"success":true}`, res.body)

	res = do(t, app, httptest.NewRequest("GET", "/get-text", nil))
	assert.JSONEq(t, `{"text":"hello"}`, res.body)
}

func TestNewApp_PagesIgnoreStoreState(t *testing.T) {
	app := setupTestApp(t, server.Config{})

	for _, path := range []string{"/", "/read"} {
		res := do(t, app, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, 200, res.status, path)
		assert.Contains(t, res.header("Content-Type"), "text/html", path)
	}

	postText(t, app, `{"text":"changed"}`, "")

	for _, path := range []string{"/", "/read"} {
		res := do(t, app, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, 200, res.status, path)
	}
}

func TestNewApp_RayIDHeader(t *testing.T) {
	app := setupTestApp(t, server.Config{})

	res := do(t, app, httptest.NewRequest("GET", "/get-text", nil))
	assert.NotEmpty(t, res.header(rayid.HeaderName))

	res = do(t, app, httptest.NewRequest("GET", "/nowhere", nil))
	assert.NotEmpty(t, res.header(rayid.HeaderName))
}

func TestNewApp_NotFoundIsJSON(t *testing.T) {
	app := setupTestApp(t, server.Config{})

	res := do(t, app, httptest.NewRequest("GET", "/nowhere", nil))
	assert.Equal(t, 404, res.status)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.body), &body))
	assert.NotEmpty(t, body["error"])
}

func TestNewApp_APIKey(t *testing.T) {
	app := setupTestApp(t, server.Config{ApiKey: "secret"})

	res := postText(t, app, `{"text":"blocked"}`, "")
	assert.Equal(t, 401, res.status)
	assert.Contains(t, res.body, "API key")

	res = postText(t, app, `{"text":"allowed"}`, "secret")
	assert.Equal(t, 200, res.status)

	// reads and pages stay public
	res = do(t, app, httptest.NewRequest("GET", "/get-text", nil))
	assert.Equal(t, 200, res.status)
	assert.JSONEq(t, `{"text":"allowed"}`, res.body)

	res = do(t, app, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, res.status)
}

func TestNewApp_Swagger(t *testing.T) {
	app := setupTestApp(t, server.Config{})

	res := do(t, app, httptest.NewRequest("GET", "/swagger/doc.json", nil))
	assert.Equal(t, 200, res.status)
	assert.Contains(t, res.body, "/submit-text")
	assert.Contains(t, res.body, "/get-text")
}

func TestNewApp_FeatureLoadError(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(pages.NewFeature(t.TempDir(), zap.NewNop()))

	app, err := server.NewApp(server.Config{}, zap.NewNop(), mgr)
	assert.Error(t, err)
	assert.Nil(t, app)
}

// panicFeature mounts a route that panics with an internal message.
type panicFeature struct{}

func (panicFeature) Name() string    { return "panic" }
func (panicFeature) IsEnabled() bool { return true }

func (panicFeature) Load(app fiber.Router) error {
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("database password is hunter2")
	})
	return nil
}

func TestNewApp_RecoveredPanicIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mgr := loader.NewManager()
	mgr.Register(panicFeature{})

	app, err := server.NewApp(server.Config{}, zap.New(core), mgr)
	require.NoError(t, err)

	res := do(t, app, httptest.NewRequest("GET", "/boom", nil))
	assert.Equal(t, 500, res.status)
	assert.JSONEq(t, `{"error":"internal server error"}`, res.body)
	assert.NotContains(t, res.body, "hunter2")

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).FilterMessage("Request error").All()
	require.Len(t, errs, 1)
	fields := errs[0].ContextMap()
	assert.Equal(t, res.header(rayid.HeaderName), fields["ray_id"])
	assert.Contains(t, fields["error"], "hunter2")
}

func TestNewApp_FiberErrorMessageKept(t *testing.T) {
	app := setupTestApp(t, server.Config{ApiKey: "secret"})

	res := postText(t, app, `{"text":"x"}`, "wrong")
	assert.Equal(t, 401, res.status)
	assert.JSONEq(t, `{"error":"invalid or missing API key"}`, res.body)
}

func TestNewApp_BodyLimit(t *testing.T) {
	store := text.NewStore()
	mgr := loader.NewManager()
	mgr.Register(text.NewFeature(store, zap.NewNop()))

	app, err := server.NewApp(server.Config{BodyLimit: 64}, zap.NewNop(), mgr)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	url := "http://" + ln.Addr().String() + "/submit-text"

	small, err := http.Post(url, "application/json", strings.NewReader(`{"text":"fits"}`))
	require.NoError(t, err)
	small.Body.Close()
	assert.Equal(t, 200, small.StatusCode)

	large := `{"text":"` + strings.Repeat("x", 256) + `"}`
	resp, err := http.Post(url, "application/json", strings.NewReader(large))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "fits", store.Get())
}
