package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
	ErrInternal        = errors.New("internal error")
)

// GreetingPrefix is the contract prefix every greeting message starts with.
const GreetingPrefix = "hello "

// Greeting is a computed greeting for a caller-supplied name.
// Invariants: Name sanitized and non-empty; Message starts with GreetingPrefix + Name.
type Greeting struct {
	ID        string
	Name      string
	Message   string
	CreatedAt time.Time
}

// Greeter (port)
// Greet maps a sanitized, non-empty name to a greeting message. Every
// implementation keeps the GreetingPrefix + name contract; alternatives may
// append a marker after the name to identify themselves.
//
//go:generate mockery --name=Greeter --with-expecter --filename=greeter_mock.go
type Greeter interface {
	Greet(ctx Context, name string) (string, error)
}

// Context is an alias to allow decoupling from std context in domain
// signatures; adapters and usecases pass context.Context through.
type Context = context.Context
