// Package app wires configuration, use cases, and the HTTP surface into a
// runnable service.
package app

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/fairyhunter13/greeting-service/internal/adapter/greeter/plain"
	"github.com/fairyhunter13/greeting-service/internal/adapter/greeter/stub"
	httpserver "github.com/fairyhunter13/greeting-service/internal/adapter/httpserver"
	"github.com/fairyhunter13/greeting-service/internal/config"
	"github.com/fairyhunter13/greeting-service/internal/domain"
	"github.com/fairyhunter13/greeting-service/internal/usecase"
)

// App holds the composed service: configuration plus the routed handler.
type App struct {
	Cfg     config.Config
	Handler http.Handler
}

// New composes the service. GREETER_MODE selects the greeter implementation
// at composition time so tests can run the whole stack against the stub.
func New(cfg config.Config) *App {
	var greeter domain.Greeter
	if cfg.UseStubGreeter() {
		greeter = stub.New()
	} else {
		greeter = plain.New()
	}
	greetSvc := usecase.NewGreetService(greeter)
	greeterCheck, staticCheck := BuildReadinessChecks(greeter)
	srv := httpserver.NewServer(cfg, greetSvc, greeterCheck, staticCheck)
	return &App{Cfg: cfg, Handler: BuildRouter(cfg, srv)}
}

// NewHTTPServer returns an http.Server for the effective port with the
// configured timeouts applied.
func (a *App) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.EffectivePort()),
		Handler:           a.Handler,
		ReadTimeout:       a.Cfg.HTTPReadTimeout,
		WriteTimeout:      a.Cfg.HTTPWriteTimeout,
		IdleTimeout:       a.Cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Listen binds the effective port. Port 0 picks an ephemeral port; the
// returned listener's address carries the actual one.
func (a *App) Listen() (net.Listener, error) {
	return net.Listen("tcp", fmt.Sprintf(":%d", a.Cfg.EffectivePort()))
}
