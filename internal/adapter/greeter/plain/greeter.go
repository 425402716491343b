// Package plain implements the production greeter.
package plain

import (
	"github.com/fairyhunter13/greeting-service/internal/domain"
)

// Greeter composes greetings from the canonical prefix and the caller name.
type Greeter struct{}

// New constructs the production greeter.
func New() *Greeter { return &Greeter{} }

// Greet returns the canonical greeting for name.
func (g *Greeter) Greet(_ domain.Context, name string) (string, error) {
	return domain.GreetingPrefix + name, nil
}
