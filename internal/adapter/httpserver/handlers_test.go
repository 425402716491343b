package httpserver_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/greeting-service/internal/adapter/greeter/plain"
	httpserver "github.com/fairyhunter13/greeting-service/internal/adapter/httpserver"
	"github.com/fairyhunter13/greeting-service/internal/config"
	"github.com/fairyhunter13/greeting-service/internal/domain"
	"github.com/fairyhunter13/greeting-service/internal/usecase"
)

// greeterFunc adapts a function to the domain.Greeter port for tests.
type greeterFunc func(ctx domain.Context, name string) (string, error)

func (f greeterFunc) Greet(ctx domain.Context, name string) (string, error) { return f(ctx, name) }

func newTestServer(t *testing.T) *httpserver.Server {
	t.Helper()
	cfg := config.Config{MaxBodyKB: 64, Port: 8080, AppEnv: "dev"}
	svc := usecase.NewGreetService(plain.New())
	return httpserver.NewServer(cfg, svc, nil, nil)
}

func newGreetingRouter(srv *httpserver.Server) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/hello", srv.HelloHandler())
	router.Get("/hello/greeting/{name}", srv.GreetingHandler())
	return router
}

func TestHelloHandler_ExactBody(t *testing.T) {
	router := newGreetingRouter(newTestServer(t))
	r := httptest.NewRequest(http.MethodGet, "/hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(b))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}

func TestGreetingHandler_PersonalizedBody(t *testing.T) {
	router := newGreetingRouter(newTestServer(t))
	r := httptest.NewRequest(http.MethodGet, "/hello/greeting/quarkus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello quarkus", string(b))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}

func TestGreetingHandler_EscapedName(t *testing.T) {
	router := newGreetingRouter(newTestServer(t))
	r := httptest.NewRequest(http.MethodGet, "/hello/greeting/Ada%20Lovelace", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello Ada Lovelace", string(b))
}

func TestGreetingHandler_UnusableName_400(t *testing.T) {
	router := newGreetingRouter(newTestServer(t))
	// Control characters only; the use case rejects the name.
	r := httptest.NewRequest(http.MethodGet, "/hello/greeting/%01%02", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	_ = resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGreetingHandler_GreeterFailure_503(t *testing.T) {
	cfg := config.Config{Port: 8080, AppEnv: "dev"}
	svc := usecase.NewGreetService(greeterFunc(func(_ domain.Context, _ string) (string, error) {
		return "", domain.ErrUnavailable
	}))
	router := newGreetingRouter(httpserver.NewServer(cfg, svc, nil, nil))

	r := httptest.NewRequest(http.MethodGet, "/hello/greeting/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	_ = resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
