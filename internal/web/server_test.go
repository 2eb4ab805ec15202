package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/postie/internal/app"
	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/logging"
	"github.com/shhac/postie/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	services := app.NewServices(app.DefaultConfig(), storage.NewMemoryStore(), logging.NewNopLogger())
	s, err := NewServer(services)
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeSend(t *testing.T, rec *httptest.ResponseRecorder) sendResponse {
	t.Helper()
	var out sendResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), rec.Body.String())
	return out
}

func TestServer_Index(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.services.Environments.SaveFor(domain.EnvProduction, "https://api.example.com"))

	rec := doJSON(t, s, http.MethodGet, "/?env=production", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, page, `value="https://api.example.com"`)
	assert.Contains(t, page, `<option value="production" selected>`)
	assert.Contains(t, page, ".status-client-error { color: #d97706; }")
	assert.Contains(t, page, "navigator.clipboard.writeText")
}

func TestServer_IndexUnknownEnvironment(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/?env=staging", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SendNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "id=1", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"missing"}`)
	}))
	defer upstream.Close()

	s := newTestServer(t)
	body := `{"method":"GET","baseUrl":"` + upstream.URL + `","path":"/api/users","query":"id=1"}`
	rec := doJSON(t, s, http.MethodPost, "/api/send", body)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeSend(t, rec)
	require.NotNil(t, out.StatusCode)
	assert.Equal(t, 404, *out.StatusCode)
	assert.Equal(t, "404 Not Found", out.StatusLabel)
	assert.Equal(t, format.BucketClientError, out.Bucket)
	assert.Equal(t, "#d97706", out.Color)
	assert.Equal(t, "{\n  \"error\": \"missing\"\n}", out.BodyText)
	assert.Contains(t, string(out.BodyHTML), `<span class="json-key">&#34;error&#34;</span>`)
	assert.Contains(t, string(out.BodyHTML), `<span class="json-string">&#34;missing&#34;</span>`)
	assert.Empty(t, out.Error)
}

func TestServer_SendInvalidBody(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/send", `{"method":"POST","baseUrl":"http://127.0.0.1:1","body":"{invalid"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeSend(t, rec)
	assert.Nil(t, out.StatusCode)
	assert.True(t, strings.HasPrefix(out.Error, "Invalid JSON body:"))
	assert.Empty(t, out.BodyHTML)
}

func TestServer_SendConnectionRefused(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()

	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/send", `{"method":"GET","baseUrl":"`+addr+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeSend(t, rec)
	assert.Nil(t, out.StatusCode)
	assert.True(t, strings.HasPrefix(out.Error, "Request failed:"))
	assert.Equal(t, format.BucketNeutral, out.Bucket)
}

func TestServer_SendBadInput(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/send", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/send", `{"method":"DELETE","baseUrl":"http://h"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SaveAndListEnvironments(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/environments/development", `{"baseUrl":"http://localhost:3000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/environments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var saved map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&saved))
	assert.Equal(t, map[string]string{
		"development": "http://localhost:3000",
		"production":  "",
	}, saved)
}

func TestServer_SaveUnknownEnvironment(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPut, "/api/environments/staging", `{"baseUrl":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.CORSOrigins = []string{"http://localhost:5173"}
	s, err := NewServer(app.NewServices(cfg, storage.NewMemoryStore(), logging.NewNopLogger()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/environments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/environments", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_NoCORSByDefault(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/environments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
