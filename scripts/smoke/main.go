// Package main runs a smoke check against a deployed lead intake endpoint.
//
// It exercises preflight, method rejection and validation without side
// effects, and only submits a real lead when --submit is set (that appends a
// sheet row and sends an email).
//
// Usage:
//
//	go run ./scripts/smoke --url=http://localhost:4000/lead [--submit]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type check struct {
	name       string
	method     string
	body       string
	wantStatus int
}

func main() {
	target := flag.String("url", "http://localhost:4000/lead", "lead endpoint URL")
	submit := flag.Bool("submit", false, "also submit a real test lead")
	flag.Parse()

	checks := []check{
		{name: "preflight", method: http.MethodOptions, wantStatus: http.StatusOK},
		{name: "method not allowed", method: http.MethodPut, wantStatus: http.StatusMethodNotAllowed},
		{name: "missing fields", method: http.MethodPost, body: `{"name":"Smoke Test"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid json", method: http.MethodPost, body: `{`, wantStatus: http.StatusBadRequest},
	}
	if *submit {
		lead, _ := json.Marshal(map[string]string{
			"name":     "Smoke Test",
			"email":    "smoke@example.com",
			"phone":    "0000000000",
			"subjects": "smoke check " + time.Now().UTC().Format(time.RFC3339),
		})
		checks = append(checks, check{name: "submit lead", method: http.MethodPost, body: string(lead), wantStatus: http.StatusOK})
	}

	client := &http.Client{Timeout: 30 * time.Second}
	failed := 0
	for _, c := range checks {
		status, body, err := run(client, *target, c)
		switch {
		case err != nil:
			failed++
			fmt.Printf("FAIL  %-20s %v\n", c.name, err)
		case status != c.wantStatus:
			failed++
			fmt.Printf("FAIL  %-20s status %d, want %d: %s\n", c.name, status, c.wantStatus, body)
		default:
			fmt.Printf("PASS  %-20s %d %s\n", c.name, status, body)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d checks failed\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Printf("\nall %d checks passed\n", len(checks))
}

func run(client *http.Client, target string, c check) (int, string, error) {
	var body io.Reader
	if c.body != "" {
		body = bytes.NewBufferString(c.body)
	}
	req, err := http.NewRequest(c.method, target, body)
	if err != nil {
		return 0, "", err
	}
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(data), nil
}
