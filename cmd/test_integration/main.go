package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Health summary
	fmt.Println("1. Fetching Summary...")
	if !sendRequest("GET", "/summary", nil) {
		fmt.Println("FAILED: Fetch summary")
		os.Exit(1)
	}
	fmt.Println("PASSED: Fetch summary")

	// 2. Pair listing with filters
	fmt.Println("2. Listing Pairs...")
	if !sendRequest("GET", "/pairs?limit=3", nil) {
		fmt.Println("FAILED: List pairs")
		os.Exit(1)
	}
	fmt.Println("PASSED: List pairs")

	// 3. Reload
	fmt.Println("3. Reloading Dataset...")
	if !sendRequest("POST", "/reload", nil) {
		fmt.Println("FAILED: Reload dataset")
		os.Exit(1)
	}
	fmt.Println("PASSED: Reload dataset")
}

func sendRequest(method, endpoint string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}
