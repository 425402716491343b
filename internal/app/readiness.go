package app

import (
	"context"
	"fmt"
	"strings"

	httpserver "github.com/fairyhunter13/greeting-service/internal/adapter/httpserver"
	"github.com/fairyhunter13/greeting-service/internal/domain"
)

// BuildReadinessChecks returns two readiness checks: the greeter self-check
// and the embedded static content check.
func BuildReadinessChecks(greeter domain.Greeter) (
	func(ctx context.Context) error,
	func(ctx context.Context) error,
) {
	greeterCheck := func(ctx context.Context) error {
		if greeter == nil {
			return fmt.Errorf("greeter not configured")
		}
		msg, err := greeter.Greet(ctx, "readiness")
		if err != nil {
			return err
		}
		if !strings.HasPrefix(msg, domain.GreetingPrefix) {
			return fmt.Errorf("greeter prefix contract broken: %q", msg)
		}
		return nil
	}
	staticCheck := httpserver.StaticContentCheck()
	return greeterCheck, staticCheck
}
