package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/greeting-service/internal/config"
	"github.com/fairyhunter13/greeting-service/internal/domain"
	"github.com/fairyhunter13/greeting-service/internal/usecase"
)

// Server aggregates handlers dependencies.
type Server struct {
	Cfg          config.Config
	Greetings    usecase.GreetService
	GreeterCheck func(ctx context.Context) error
	StaticCheck  func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, greetings usecase.GreetService, greeterCheck, staticCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Greetings: greetings, GreeterCheck: greeterCheck, StaticCheck: staticCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// HelloHandler serves the bare hello endpoint.
func (s *Server) HelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, s.Greetings.Hello(r.Context()))
	}
}

// GreetingHandler serves the personalized greeting endpoint.
func (s *Server) GreetingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		// chi hands back the raw segment when the URL carried escapes.
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		if name == "" {
			writeError(w, r, fmt.Errorf("%w: name missing", domain.ErrInvalidArgument), nil)
			return
		}
		g, err := s.Greetings.Greet(r.Context(), name)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeText(w, http.StatusOK, g.Message)
	}
}

// CreateGreetingHandler accepts a JSON body and returns the composed greeting.
func (s *Server) CreateGreetingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotAcceptable)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "INVALID_ARGUMENT", "message": "not acceptable", "details": map[string]any{"accept": a}}})
			return
		}
		// Cap body size to prevent abuse
		r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxBodyBytes())
		var req struct {
			Name string `json:"name" validate:"required,max=100"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			verrs := map[string]string{}
			if ve, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range ve {
					verrs[strings.ToLower(fe.Field())] = fe.Tag()
				}
			}
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
			return
		}
		g, err := s.Greetings.CreateGreeting(r.Context(), req.Name)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":         g.ID,
			"name":       g.Name,
			"message":    g.Message,
			"created_at": g.CreatedAt.Format(time.RFC3339Nano),
		})
	}
}

// ReadyzHandler returns a readiness handler that probes the greeter and the
// embedded static pages.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.GreeterCheck != nil {
			if err := s.GreeterCheck(ctx); err != nil {
				checks = append(checks, check{Name: "greeter", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "greeter", OK: true})
			}
		}
		if s.StaticCheck != nil {
			if err := s.StaticCheck(ctx); err != nil {
				checks = append(checks, check{Name: "static", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "static", OK: true})
			}
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}

// OpenAPIServe serves api/openapi.yaml if present (used by clients and docs tooling).
func (s *Server) OpenAPIServe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile("api/openapi.yaml")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}
