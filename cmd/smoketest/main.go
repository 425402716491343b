// Command smoketest exercises a running greeting server end to end and
// prints a pass/fail report. It exits non-zero when any check fails, so
// it can gate deploys from CI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/fatih/color"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultURL = "http://localhost:8080"

type check struct {
	Name string
	Run  func(ctx context.Context, c *http.Client, base string) error
}

func main() {
	var baseURL string
	var timeout time.Duration
	var verbose bool

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&baseURL, "url", defaultURL, "base URL of the greeting server")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the run")
	fs.BoolVar(&verbose, "verbose", false, "print response bodies for failed checks")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		os.Exit(1)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	// Traced transport so smoke traffic shows up alongside server spans.
	transport := otelhttp.NewTransport(http.DefaultTransport,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("Smoke %s %s", r.Method, r.URL.Path)
		}),
	)
	client := &http.Client{Timeout: 10 * time.Second, Transport: transport}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := waitReady(ctx, client, baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "Server at %s never became ready: %s\n", baseURL, err)
		os.Exit(1)
	}

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	fmt.Printf("Running smoke checks against %s\n\n", baseURL)
	var failures int
	for _, c := range checks {
		err := c.Run(ctx, client, baseURL)
		if err != nil {
			failures++
			fmt.Printf("%s %s\n", fail("✗"), c.Name)
			if verbose {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Printf("    %s\n", line)
				}
			} else {
				fmt.Printf("    %s\n", err)
			}
			continue
		}
		fmt.Printf("%s %s\n", pass("✓"), c.Name)
	}

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%s: %d of %d checks failed\n", fail("FAIL"), failures, len(checks))
		os.Exit(1)
	}
	fmt.Printf("%s: all %d checks passed\n", pass("OK"), len(checks))
}

// waitReady polls the readiness endpoint until the server answers 200.
func waitReady(ctx context.Context, c *http.Client, base string) error {
	op := func() error {
		body, status, err := fetch(ctx, c, base+"/readyz")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("readyz status %d: %s", status, body)
		}
		return nil
	}
	bo := backoff.WithContext(backoff.NewConstantBackOff(500*time.Millisecond), ctx)
	return backoff.Retry(op, bo)
}

var checks = []check{
	{Name: "GET /hello returns the exact body", Run: func(ctx context.Context, c *http.Client, base string) error {
		body, status, err := fetch(ctx, c, base+"/hello")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("status %d", status)
		}
		if body != "hello" {
			return fmt.Errorf("body %q, want %q", body, "hello")
		}
		return nil
	}},
	{Name: "GET /hello/greeting/{name} personalizes", Run: func(ctx context.Context, c *http.Client, base string) error {
		body, status, err := fetch(ctx, c, base+"/hello/greeting/smoke")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("status %d", status)
		}
		if !strings.HasPrefix(body, "hello smoke") {
			return fmt.Errorf("body %q does not start with %q", body, "hello smoke")
		}
		return nil
	}},
	{Name: "GET /test.html serves the fixed title", Run: func(ctx context.Context, c *http.Client, base string) error {
		body, status, err := fetch(ctx, c, base+"/test.html")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("status %d", status)
		}
		if !strings.Contains(body, "<title>Testing with Quarkus</title>") {
			return fmt.Errorf("page is missing the expected title")
		}
		return nil
	}},
	{Name: "GET /healthz is alive", Run: func(ctx context.Context, c *http.Client, base string) error {
		_, status, err := fetch(ctx, c, base+"/healthz")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("status %d", status)
		}
		return nil
	}},
	{Name: "GET /metrics exposes request counters", Run: func(ctx context.Context, c *http.Client, base string) error {
		body, status, err := fetch(ctx, c, base+"/metrics")
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("status %d", status)
		}
		if !strings.Contains(body, "http_requests_total") {
			return fmt.Errorf("http_requests_total is not exported")
		}
		return nil
	}},
	{Name: "POST /v1/greetings creates a greeting", Run: func(ctx context.Context, c *http.Client, base string) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/v1/greetings", strings.NewReader(`{"name":"smoke"}`))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := c.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("status %d: %s", resp.StatusCode, b)
		}
		var obj struct {
			ID      string `json:"id"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if obj.ID == "" || obj.Message != "hello smoke" {
			return fmt.Errorf("unexpected payload id=%q message=%q", obj.ID, obj.Message)
		}
		return nil
	}},
	{Name: "responses carry a request id", Run: func(ctx context.Context, c *http.Client, base string) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/hello", nil)
		if err != nil {
			return err
		}
		resp, err := c.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.Header.Get("X-Request-Id") == "" {
			return fmt.Errorf("X-Request-Id header is missing")
		}
		return nil
	}},
}

func fetch(ctx context.Context, c *http.Client, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(b), resp.StatusCode, nil
}
