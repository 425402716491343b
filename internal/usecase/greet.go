// Package usecase contains the application services behind the HTTP layer.
package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fairyhunter13/greeting-service/internal/adapter/observability"
	"github.com/fairyhunter13/greeting-service/internal/domain"
	obsctx "github.com/fairyhunter13/greeting-service/internal/observability"
	"github.com/fairyhunter13/greeting-service/pkg/textx"
)

// GreetService composes greetings through the configured Greeter.
type GreetService struct {
	Greeter domain.Greeter
}

// NewGreetService constructs a GreetService with the given greeter.
func NewGreetService(g domain.Greeter) GreetService { return GreetService{Greeter: g} }

// Hello returns the canonical short greeting served by the root hello endpoint.
func (s GreetService) Hello(ctx domain.Context) string {
	observability.ObserveGreeting("hello", 0)
	obsctx.LoggerFromContext(ctx).Debug("hello served")
	return strings.TrimSuffix(domain.GreetingPrefix, " ")
}

// Greet returns a Greeting addressed to name.
func (s GreetService) Greet(ctx domain.Context, name string) (domain.Greeting, error) {
	return s.greet(ctx, name, "greeting")
}

// CreateGreeting serves the JSON API. Same semantics as Greet with a
// separate metrics label so the two surfaces stay distinguishable.
func (s GreetService) CreateGreeting(ctx domain.Context, name string) (domain.Greeting, error) {
	return s.greet(ctx, name, "api")
}

func (s GreetService) greet(ctx domain.Context, name, endpoint string) (domain.Greeting, error) {
	lg := obsctx.LoggerFromContext(ctx)
	cleaned := textx.SanitizeName(name)
	if cleaned == "" {
		lg.Warn("rejecting unusable name", slog.Int("raw_len", len(name)))
		return domain.Greeting{}, fmt.Errorf("%w: name has no printable characters", domain.ErrInvalidArgument)
	}
	msg, err := s.Greeter.Greet(ctx, cleaned)
	if err != nil {
		lg.Error("greeter failed",
			slog.String("name", textx.Truncate(cleaned, 64)),
			slog.Any("error", err))
		return domain.Greeting{}, err
	}
	g := domain.Greeting{
		ID:        uuid.NewString(),
		Name:      cleaned,
		Message:   msg,
		CreatedAt: time.Now().UTC(),
	}
	observability.ObserveGreeting(endpoint, utf8.RuneCountInString(cleaned))
	lg.Debug("greeting composed",
		slog.String("greeting_id", g.ID),
		slog.String("endpoint", endpoint),
		slog.String("name", textx.Truncate(cleaned, 64)))
	return g, nil
}
