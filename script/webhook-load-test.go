package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/whatsapp-ledger/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single webhook delivery
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Status       string
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[string]int // webhook "status" field per response
	SenderStats        map[string]int
	CommandStats       map[string]int
	Lock               sync.Mutex
}

// CommandScenario is a chat command sent by the simulated senders
type CommandScenario struct {
	Name string
	Text string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of webhook deliveries")
	sendersStr := flag.String("s", "628111000001,628111000002,628111000003", "Comma-separated sender phone numbers")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var senders []string
	for _, s := range strings.Split(*sendersStr, ",") {
		if s = strings.TrimSpace(s); s != "" {
			senders = append(senders, s)
		}
	}
	if len(senders) == 0 {
		senders = []string{"628111000001"}
	}

	// Valid commands plus a share of rejected ones, so failure replies get exercised too
	scenarios := []CommandScenario{
		{"Expense food", "makanan 25000 makan siang"},
		{"Expense transport", "transport 15000 ojek"},
		{"Expense bills", "tagihan 350000 listrik bulan ini"},
		{"Income salary", "gaji 8000000"},
		{"Income bonus", "Bonus 500000 proyek"},
		{"Unknown category", "xyz123 100"},
		{"Invalid amount", "makanan abc"},
		{"Invalid format", "halo"},
	}

	fmt.Printf("Sending webhook deliveries for %d senders: %v\n", len(senders), senders)
	fmt.Printf("Command scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[string]int),
		SenderStats:   make(map[string]int),
		CommandStats:  make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, senders, scenarios, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
			}
			key := result.Status
			if result.Error != nil {
				key = result.Error.Error()
			}
			stats.StatusCounts[key]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)
	<-done

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(baseURL string, delayMs int, senders []string, scenarios []CommandScenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 15 * time.Second,
	}
	url := baseURL + "/api/whatsapp-webhook"

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		sender := senders[rand.Intn(len(senders))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.SenderStats[sender]++
		stats.CommandStats[scenario.Name]++
		stats.Lock.Unlock()

		payload := dto.WebhookPayload{
			Object: "whatsapp_business_account",
			Entry: []dto.WebhookEntry{{
				Changes: []dto.WebhookChange{{
					Field: "messages",
					Value: dto.WebhookValue{
						MessagingProduct: "whatsapp",
						Messages: []dto.WebhookMessage{{
							From:      sender,
							Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
							Type:      "text",
							Text:      &dto.WebhookText{Body: scenario.Text},
						}},
					},
				}},
			}},
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
		result := TestResult{ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		var body dto.WebhookResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()

		result.StatusCode = resp.StatusCode
		result.Status = fmt.Sprintf("%d %s", resp.StatusCode, body.Status)
		// Rejected commands are expected; only server errors count as failures
		result.Success = resp.StatusCode < http.StatusInternalServerError
		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Handled Requests:    %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Server Errors:       %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	printDistribution("SENDER DISTRIBUTION", stats.SenderStats)
	printDistribution("COMMAND DISTRIBUTION", stats.CommandStats)
	printDistribution("RESPONSE STATUS", stats.StatusCounts)
}

func printDistribution(title string, counts map[string]int) {
	fmt.Printf("\n----------------- %s -----------------\n", title)
	total := 0
	keys := make([]string, 0, len(counts))
	for k, c := range counts {
		total += c
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-30s: %d (%.1f%%)\n", k, counts[k], float64(counts[k])/float64(total)*100)
	}
}
