package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const baseURL = "http://localhost:8080"

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Health
	fmt.Println("1. Checking health...")
	body, ok := sendRequest("GET", "/health", nil, http.StatusOK)
	if !ok || !strings.Contains(body, "evodex-mcp-server") {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	// 2. Formula assignment for a documented oxidation
	fmt.Println("2. Assigning formula...")
	body, ok = sendRequest("POST", "/api/v1/formula", map[string]any{
		"reaction": "CCCO>>CCC=O",
	}, http.StatusOK)
	if !ok || !strings.Contains(body, "EVODEX.1-F4") {
		fmt.Println("FAILED: Formula assignment")
		os.Exit(1)
	}
	fmt.Println("PASSED: Formula assignment")

	// 3. Full evaluation of a plausible reaction
	fmt.Println("3. Evaluating plausible reaction...")
	body, ok = sendRequest("POST", "/api/v1/evaluate", map[string]any{
		"reaction":      "CCCO>>CCC=O",
		"operator_type": "E",
	}, http.StatusOK)
	if !ok || !strings.Contains(body, "Is Plausible: true") || !strings.Contains(body, "Confidence: High") {
		fmt.Println("FAILED: Plausible evaluation")
		os.Exit(1)
	}
	fmt.Println("PASSED: Plausible evaluation")

	// 4. Full evaluation of an implausible reaction
	fmt.Println("4. Evaluating implausible reaction...")
	body, ok = sendRequest("POST", "/api/v1/evaluate", map[string]any{
		"reaction": "CCCO>>CC(Br)CO",
	}, http.StatusOK)
	if !ok || !strings.Contains(body, "Is Plausible: false") || !strings.Contains(body, "Confidence: Low") {
		fmt.Println("FAILED: Implausible evaluation")
		os.Exit(1)
	}
	fmt.Println("PASSED: Implausible evaluation")

	// 5. Batch evaluation with a malformed item in the middle
	fmt.Println("5. Evaluating batch...")
	body, ok = sendRequest("POST", "/api/v1/batch", map[string]any{
		"reactions": []string{"CCCO>>CCC=O", "not-a-reaction", "CCO>>CC=O"},
	}, http.StatusOK)
	if !ok || !strings.Contains(body, "Batch Evaluation Results (3 reactions)") || !strings.Contains(body, "Error:") {
		fmt.Println("FAILED: Batch evaluation")
		os.Exit(1)
	}
	fmt.Println("PASSED: Batch evaluation")

	// 6. Malformed reaction is rejected
	fmt.Println("6. Rejecting malformed reaction...")
	body, ok = sendRequest("POST", "/api/v1/evaluate", map[string]any{
		"reaction": "CCCO",
	}, http.StatusBadRequest)
	if !ok || !strings.Contains(body, "malformed reaction") {
		fmt.Println("FAILED: Malformed rejection")
		os.Exit(1)
	}
	fmt.Println("PASSED: Malformed rejection")

	fmt.Println("All integration checks passed.")
}

func sendRequest(method, endpoint string, payload any, wantStatus int) (string, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return "", false
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		return "", false
	}

	if resp.StatusCode != wantStatus {
		fmt.Printf("Unexpected status %d (want %d): %s\n", resp.StatusCode, wantStatus, string(data))
		return string(data), false
	}

	return string(data), true
}
