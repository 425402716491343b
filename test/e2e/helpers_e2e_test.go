//go:build e2e

package e2e_test

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// getenv returns the value of the environment variable k or def if empty.
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// baseURL is the deployed server under test. Override with E2E_BASE_URL.
var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

// waitForAppReady polls /readyz until the server reports ready or the
// timeout elapses.
func waitForAppReady(t *testing.T, client *http.Client, timeout time.Duration) {
	t.Helper()
	op := func() error {
		resp, err := client.Get(baseURL + "/readyz")
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("readyz status %d", resp.StatusCode)
		}
		return nil
	}
	bo := backoff.NewConstantBackOff(time.Second)
	if err := backoff.Retry(op, backoff.WithMaxRetries(bo, uint64(timeout/time.Second))); err != nil {
		t.Fatalf("app at %s not ready within %s: %v", baseURL, timeout, err)
	}
}

// getBody fetches url and returns the status code and body.
func getBody(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	return resp.StatusCode, string(b)
}
