// Package web serves the browser shell: one HTML page plus a small JSON API
// that runs submissions through the shared pipeline.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/shhac/postie/internal/app"
	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/highlight"
	"github.com/shhac/postie/internal/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxRequestBytes caps the JSON accepted by the API endpoints.
const maxRequestBytes = 4 << 20

// Server is the HTTP surface of the browser shell.
type Server struct {
	services *app.Services
	runner   pipeline.Runner
	router   chi.Router
	handler  http.Handler
	page     *template.Template
	logger   *slog.Logger
}

// NewServer creates a Server over services.
func NewServer(services *app.Services) (*Server, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	s := &Server{
		services: services,
		runner:   services.Pipeline,
		router:   chi.NewRouter(),
		page:     page,
		logger:   services.Logger,
	}
	s.routes()

	s.handler = s.router
	if origins := services.Config.CORSOrigins; len(origins) > 0 {
		s.handler = newCORS(origins).Handler(s.router)
	}
	return s, nil
}

// newCORS allows the listed origins to drive the JSON API.
func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})
}

func (s *Server) routes() {
	r := s.router

	r.Get("/", s.handleIndex)
	r.Post("/api/send", s.handleSend)
	r.Get("/api/environments", s.handleListEnvironments)
	r.Put("/api/environments/{env}", s.handleSaveEnvironment)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("http_request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	s.handler.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	return dec.Decode(v)
}

// --- HTTP handlers ---

type pageData struct {
	Methods      []domain.Method
	Environments []domain.Environment
	Active       domain.Environment
	BaseURL      string
	Buckets      []bucketStyle
}

type bucketStyle struct {
	Name  format.Bucket
	Color string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	active := domain.EnvDevelopment
	if q := r.URL.Query().Get("env"); q != "" {
		env, err := domain.ParseEnvironment(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		active = env
	}

	data := pageData{
		Methods:      domain.Methods,
		Environments: domain.Environments,
		Active:       active,
		BaseURL:      s.services.Environments.SavedURL(active),
	}
	for _, b := range format.Buckets {
		data.Buckets = append(data.Buckets, bucketStyle{Name: b, Color: b.Color()})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("rendering page", slog.Any("error", err))
	}
}

// sendRequest is the form as posted by the page.
type sendRequest struct {
	Method      string `json:"method"`
	BaseURL     string `json:"baseUrl"`
	Path        string `json:"path"`
	QueryString string `json:"query"`
	UseAuth     bool   `json:"useAuth"`
	Token       string `json:"token"`
	JSONBody    string `json:"body"`
}

// sendResponse is one ResponseResult prepared for display.
type sendResponse struct {
	StatusCode  *int          `json:"statusCode"`
	StatusLabel string        `json:"statusLabel"`
	Bucket      format.Bucket `json:"bucket"`
	Color       string        `json:"color"`
	BodyText    string        `json:"bodyText"`
	BodyHTML    template.HTML `json:"bodyHtml"`
	Error       string        `json:"error,omitempty"`
	DurationMS  int64         `json:"durationMs"`
	Size        int           `json:"size"`
}

func newSendResponse(result domain.ResponseResult) sendResponse {
	bucket := format.Classify(result.StatusCode)
	resp := sendResponse{
		StatusCode:  result.StatusCode,
		StatusLabel: format.StatusLabel(result.StatusCode),
		Bucket:      bucket,
		Color:       bucket.Color(),
		BodyText:    result.BodyText,
		Error:       result.ErrorMessage,
		DurationMS:  result.Duration.Milliseconds(),
		Size:        result.Size,
	}
	if !result.Failed() {
		resp.BodyHTML = highlight.HTML(result.BodyText)
	}
	return resp
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	var body sendRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	method, err := domain.ParseMethod(body.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.runner.Send(r.Context(), domain.RequestConfig{
		Method:      method,
		BaseURL:     body.BaseURL,
		Path:        body.Path,
		QueryString: body.QueryString,
		UseAuth:     body.UseAuth,
		Token:       body.Token,
		JSONBody:    body.JSONBody,
	})
	if err != nil && !errors.Is(err, apperrors.ErrInvalidRequestBody) && !errors.Is(err, apperrors.ErrRequestFailed) {
		s.logger.Error("send failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Failed submissions are still a successful API call: the page shows
	// ErrorMessage in the response area.
	writeJSON(w, http.StatusOK, newSendResponse(result))
}

func (s *Server) handleListEnvironments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.services.Environments.Saved())
}

func (s *Server) handleSaveEnvironment(w http.ResponseWriter, r *http.Request) {
	env, err := domain.ParseEnvironment(chi.URLParam(r, "env"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var body struct {
		BaseURL string `json:"baseUrl"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := s.services.Environments.SaveFor(env, body.BaseURL); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.services.Environments.Saved())
}
