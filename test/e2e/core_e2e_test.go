//go:build e2e
// +build e2e

// Package e2e_test provides end-to-end tests for a deployed greeting server.
//
// The suite talks to a running instance over HTTP (E2E_BASE_URL, default
// http://localhost:8080) and verifies the public contract: the fixed hello
// body, personalized greetings, the static test page, and the operational
// probes. It is safe to run repeatedly against the same instance.
package e2e_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"
)

const (
	// coreHTTPTimeout is the HTTP client timeout for individual requests.
	coreHTTPTimeout = 15 * time.Second

	// coreAppReadyTimeout is the maximum time to wait for the app to be ready.
	coreAppReadyTimeout = 60 * time.Second
)

func TestE2E_Core_Hello(t *testing.T) {
	client := &http.Client{Timeout: coreHTTPTimeout}
	waitForAppReady(t, client, coreAppReadyTimeout)

	t.Log("=== Core E2E Hello Test ===")

	status, body := getBody(t, client, baseURL+"/hello")
	if status != http.StatusOK {
		t.Fatalf("/hello status %d", status)
	}
	if body != "hello" {
		t.Fatalf("/hello body %q, want %q", body, "hello")
	}
}

func TestE2E_Core_Greeting(t *testing.T) {
	client := &http.Client{Timeout: coreHTTPTimeout}
	waitForAppReady(t, client, coreAppReadyTimeout)

	t.Log("=== Core E2E Greeting Test ===")

	for _, name := range []string{"quarkus", "bob", "Ada%20Lovelace"} {
		status, body := getBody(t, client, baseURL+"/hello/greeting/"+name)
		if status != http.StatusOK {
			t.Fatalf("/hello/greeting/%s status %d", name, status)
		}
		if !strings.HasPrefix(body, "hello ") {
			t.Fatalf("/hello/greeting/%s body %q does not start with %q", name, body, "hello ")
		}
		t.Logf("greeting for %s: %q", name, body)
	}
}

func TestE2E_Core_TestPage(t *testing.T) {
	client := &http.Client{Timeout: coreHTTPTimeout}
	waitForAppReady(t, client, coreAppReadyTimeout)

	t.Log("=== Core E2E Static Page Test ===")

	status, body := getBody(t, client, baseURL+"/test.html")
	if status != http.StatusOK {
		t.Fatalf("/test.html status %d", status)
	}
	if !strings.Contains(body, "<title>Testing with Quarkus</title>") {
		t.Fatalf("/test.html is missing the expected title")
	}
}

func TestE2E_Core_Probes(t *testing.T) {
	client := &http.Client{Timeout: coreHTTPTimeout}
	waitForAppReady(t, client, coreAppReadyTimeout)

	t.Log("=== Core E2E Probe Test ===")

	status, _ := getBody(t, client, baseURL+"/healthz")
	if status != http.StatusOK {
		t.Fatalf("/healthz status %d", status)
	}

	status, body := getBody(t, client, baseURL+"/readyz")
	if status != http.StatusOK {
		t.Fatalf("/readyz status %d: %s", status, body)
	}
	var obj struct {
		Checks []struct {
			Name string `json:"name"`
			OK   bool   `json:"ok"`
		} `json:"checks"`
	}
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		t.Fatalf("readyz decode: %v", err)
	}
	for _, c := range obj.Checks {
		if !c.OK {
			t.Errorf("check %s not ok", c.Name)
		}
	}
}

func TestE2E_Core_GreetingsAPI(t *testing.T) {
	client := &http.Client{Timeout: coreHTTPTimeout}
	waitForAppReady(t, client, coreAppReadyTimeout)

	t.Log("=== Core E2E Greetings API Test ===")

	resp, err := client.Post(baseURL+"/v1/greetings", "application/json", strings.NewReader(`{"name":"e2e"}`))
	if err != nil {
		t.Fatalf("POST /v1/greetings: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /v1/greetings status %d", resp.StatusCode)
	}
	var obj map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg, _ := obj["message"].(string); msg != "hello e2e" {
		t.Fatalf("message %q, want %q", msg, "hello e2e")
	}
	if id, _ := obj["id"].(string); id == "" {
		t.Fatalf("id missing: %#v", obj)
	}
}
