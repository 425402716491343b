package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"embed"
	"io/fs"

	"github.com/gabriel-vasile/mimetype"

	"github.com/fairyhunter13/greeting-service/internal/domain"
)

//go:embed static
var staticFiles embed.FS

// staticPages lists the files the readiness probe requires before the
// service reports ready.
var staticPages = []string{"index.html", "test.html"}

// StaticHandler serves the embedded pages. Content types come from byte
// sniffing, so pages render correctly regardless of extension.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("embedded static subtree missing: %v", err))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" || name == "." {
			name = "index.html"
		}
		b, err := fs.ReadFile(sub, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", mimetype.Detect(b).String())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	})
}

// StaticContentCheck verifies the embedded pages are present and non-empty.
// Wired into the readiness endpoint.
func StaticContentCheck() func(context.Context) error {
	return func(context.Context) error {
		for _, name := range staticPages {
			b, err := staticFiles.ReadFile(path.Join("static", name))
			if err != nil {
				return fmt.Errorf("%w: static page %s: %v", domain.ErrUnavailable, name, err)
			}
			if len(b) == 0 {
				return fmt.Errorf("%w: static page %s is empty", domain.ErrUnavailable, name)
			}
		}
		return nil
	}
}
