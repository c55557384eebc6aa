package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/auth"
	timeProvider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

// GenerateRequest is the generation payload
type GenerateRequest struct {
	MessageType        string         `json:"messageType"`
	MessageDescription string         `json:"messageDescription"`
	Context            map[string]any `json:"context"`
	Locale             string         `json:"locale"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	StatusCounts      map[int]int
	ErrorCounts       map[string]int
	ScenarioStats     map[string]int
	PaidGenerations   map[string]int // 200 responses of /api/generate per user
	TotalTime         time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	Lock              sync.Mutex
}

// Scenario is one request shape
type Scenario struct {
	Name   string
	Method string
	Path   string
	Body   any
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.String("u", "load-user-1,load-user-2,load-user-3", "Comma-separated user ids to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("CL_AUTH_JWT_SECRET"), "Identity token secret of a server running with auth.provider=jwt")
	issuer := flag.String("issuer", "", "Identity token issuer")
	withGenerate := flag.Bool("generate", false, "Include paid generation requests")
	startingGrant := flag.Int("grant", 5, "Starting credits of a new account, used by the consistency check")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	userIDs := splitList(*users)
	if len(userIDs) == 0 {
		fmt.Println("No user ids given")
		os.Exit(1)
	}

	tokens, err := issueTokens(*secret, *issuer, userIDs)
	if err != nil {
		fmt.Println("Failed to issue identity tokens:", err)
		os.Exit(1)
	}

	scenarios := []Scenario{
		{Name: "balance", Method: http.MethodGet, Path: "/api/credits"},
		{Name: "referral code", Method: http.MethodGet, Path: "/api/referral/generate"},
	}
	if *withGenerate {
		scenarios = append(scenarios, Scenario{
			Name:   "generate",
			Method: http.MethodPost,
			Path:   "/api/generate",
			Body: GenerateRequest{
				MessageType:        "follow-up",
				MessageDescription: "Remind the team about the release checklist",
				Context: map[string]any{
					"formality": 50, "directness": 60, "emotionalSensitivity": 40, "powerRelationship": "equal",
				},
				Locale: "en",
			},
		})
	}

	fmt.Printf("Load testing API across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Scenarios: %d, concurrency: %d, requests: %d, delay: %d ms\n", len(scenarios), *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		StatusCounts:    make(map[int]int),
		ErrorCounts:     make(map[string]int),
		ScenarioStats:   make(map[string]int),
		PaidGenerations: make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
	}

	// Accounts exist before the concurrent phase so balances start from the grant
	client := &http.Client{Timeout: 30 * time.Second}
	for _, userID := range userIDs {
		if _, err := send(client, *baseURL, tokens[userID], Scenario{Method: http.MethodPost, Path: "/api/account/init"}); err != nil {
			fmt.Printf("Failed to initialize account %s: %v\n", userID, err)
		}
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, userIDs, tokens, scenarios, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.Error != nil {
				stats.ErrorCounts[result.Error.Error()]++
			} else {
				stats.StatusCounts[result.StatusCode]++
				if result.Scenario == "generate" && result.StatusCode == http.StatusOK {
					stats.PaidGenerations[result.UserID]++
				}
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats, *startingGrant)
}

func issueTokens(secret, issuer string, userIDs []string) (map[string]string, error) {
	issuerTokens, err := auth.NewLocalIdentityTokens(secret, issuer, 0, timeProvider.NewRealTimeProvider())
	if err != nil {
		return nil, err
	}
	tokens := make(map[string]string, len(userIDs))
	for _, userID := range userIDs {
		token, err := issuerTokens.Issue(entity.Identity{UserID: userID, Email: userID + "@load.test"}, time.Hour)
		if err != nil {
			return nil, err
		}
		tokens[userID] = token
	}
	return tokens, nil
}

func worker(client *http.Client, baseURL string, delayMs int, userIDs []string, tokens map[string]string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		start := time.Now()
		status, err := send(client, baseURL, tokens[userID], scenario)
		results <- TestResult{
			UserID:       userID,
			Scenario:     scenario.Name,
			ResponseTime: time.Since(start),
			StatusCode:   status,
			Error:        err,
		}
	}
}

func send(client *http.Client, baseURL, token string, scenario Scenario) (int, error) {
	var body bytes.Buffer
	if scenario.Body != nil {
		if err := json.NewEncoder(&body).Encode(scenario.Body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(scenario.Method, baseURL+scenario.Path, &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func printResults(stats *TestStats, startingGrant int) {
	completed := len(stats.ResponseTimes)
	tps := float64(completed) / stats.TotalTime.Seconds()

	var avg, p50, p90, p99 time.Duration
	if completed > 0 {
		avg = stats.TotalResponseTime / time.Duration(completed)
		sorted := append([]time.Duration(nil), stats.ResponseTimes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[completed*50/100]
		p90 = sorted[completed*90/100]
		p99 = sorted[completed*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for status, count := range stats.StatusCounts {
		fmt.Printf("%d %-25s: %d\n", status, http.StatusText(status), count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	if len(stats.PaidGenerations) > 0 {
		fmt.Println("\n================= BALANCE CONSISTENCY =================")
		consistent := true
		for userID, paid := range stats.PaidGenerations {
			fmt.Printf("%-20s: %d paid generations\n", userID, paid)
			if paid > startingGrant {
				consistent = false
			}
		}
		if consistent {
			fmt.Printf("✅ No user was served more generations than the %d starting credits\n", startingGrant)
		} else {
			fmt.Printf("❌ Some users were served more generations than the %d starting credits\n", startingGrant)
		}
	}
	fmt.Println("================================================")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
