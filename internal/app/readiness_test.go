package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/greeting-service/internal/adapter/greeter/plain"
	"github.com/fairyhunter13/greeting-service/internal/adapter/greeter/stub"
	"github.com/fairyhunter13/greeting-service/internal/app"
	"github.com/fairyhunter13/greeting-service/internal/domain"
)

type greeterFunc func(ctx domain.Context, name string) (string, error)

func (f greeterFunc) Greet(ctx domain.Context, name string) (string, error) { return f(ctx, name) }

func TestBuildReadinessChecks_PlainGreeterOK(t *testing.T) {
	greeterCheck, staticCheck := app.BuildReadinessChecks(plain.New())
	require.NoError(t, greeterCheck(context.Background()))
	require.NoError(t, staticCheck(context.Background()))
}

func TestBuildReadinessChecks_StubGreeterOK(t *testing.T) {
	// The stub keeps the canonical prefix, so the contract check passes.
	greeterCheck, _ := app.BuildReadinessChecks(stub.New())
	require.NoError(t, greeterCheck(context.Background()))
}

func TestBuildReadinessChecks_GreeterError(t *testing.T) {
	greeterCheck, _ := app.BuildReadinessChecks(greeterFunc(func(_ domain.Context, _ string) (string, error) {
		return "", errors.New("boom")
	}))
	err := greeterCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuildReadinessChecks_PrefixContractViolation(t *testing.T) {
	greeterCheck, _ := app.BuildReadinessChecks(greeterFunc(func(_ domain.Context, name string) (string, error) {
		return "goodbye " + name, nil
	}))
	err := greeterCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefix contract")
}

func TestBuildReadinessChecks_NilGreeter(t *testing.T) {
	greeterCheck, _ := app.BuildReadinessChecks(nil)
	require.Error(t, greeterCheck(context.Background()))
}
