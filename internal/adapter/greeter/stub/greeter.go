// Package stub provides a deterministic greeter for tests and local runs.
package stub

import (
	"github.com/fairyhunter13/greeting-service/internal/domain"
)

// Marker is appended to every stub greeting so callers can tell which
// implementation served the request.
const Marker = " (stub)"

// Greeter is a fast, deterministic greeter. It keeps the canonical
// prefix so prefix assertions hold against either implementation.
type Greeter struct{}

// New constructs the stub greeter.
func New() *Greeter { return &Greeter{} }

// Greet returns the canonical greeting for name with the stub marker appended.
func (g *Greeter) Greet(_ domain.Context, name string) (string, error) {
	return domain.GreetingPrefix + name + Marker, nil
}
