// Command stress_test load-tests an ipc-stream-server instance by pulling
// its /stream endpoint concurrently and draining each response body,
// reporting throughput and latency.
//
// Adapted from the teacher's TCP-protocol stress tool
// (tools/stress_test/main.go): the worker/result-aggregation shape is
// kept, but sendRequest now drives net/http against the HTTP streaming
// endpoint instead of hand-rolled length-prefixed TCP frames.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// StressTestConfig holds configuration for the stress test.
type StressTestConfig struct {
	URL         string
	Concurrency int
	Duration    time.Duration
	AuthToken   string
	ReportFile  string
}

// StressTestResult holds the results of a stress test.
type StressTestResult struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	BytesRead      int64
	TotalDuration  time.Duration
	AvgLatency     time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	RequestsPerSec float64
}

func main() {
	config := parseFlags()

	fmt.Println("=== ipc-stream-server Stress Test ===")
	fmt.Printf("Target: %s\n", config.URL)
	fmt.Printf("Concurrency: %d workers\n", config.Concurrency)
	fmt.Printf("Duration: %v\n", config.Duration)
	fmt.Println()

	result := runStressTest(config)
	printResults(result)

	if config.ReportFile != "" {
		saveReport(config, result)
	}
}

func parseFlags() StressTestConfig {
	config := StressTestConfig{}

	flag.StringVar(&config.URL, "url", "http://127.0.0.1:8089/stream", "ipc-stream-server /stream URL")
	flag.IntVar(&config.Concurrency, "c", 10, "Number of concurrent workers")
	flag.DurationVar(&config.Duration, "d", 30*time.Second, "Duration of test")
	flag.StringVar(&config.AuthToken, "token", "", "Bearer token, if the server requires auth")
	flag.StringVar(&config.ReportFile, "o", "", "Output report file (JSON)")

	flag.Parse()

	return config
}

func runStressTest(config StressTestConfig) StressTestResult {
	var (
		totalReqs    int64
		successReqs  int64
		failedReqs   int64
		bytesRead    int64
		totalLatency int64
		minLatency   int64 = 1<<63 - 1
		maxLatency   int64
		wg           sync.WaitGroup
		stopChan     = make(chan struct{})
	)

	client := &http.Client{Timeout: 10 * time.Second}
	startTime := time.Now()

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runWorker(client, config, stopChan, &totalReqs, &successReqs, &failedReqs, &bytesRead, &totalLatency, &minLatency, &maxLatency)
		}()
	}

	time.Sleep(config.Duration)
	close(stopChan)
	wg.Wait()

	duration := time.Since(startTime)
	total := atomic.LoadInt64(&totalReqs)
	success := atomic.LoadInt64(&successReqs)
	failed := atomic.LoadInt64(&failedReqs)
	latencySum := atomic.LoadInt64(&totalLatency)
	minLat := atomic.LoadInt64(&minLatency)
	maxLat := atomic.LoadInt64(&maxLatency)

	var avgLatency time.Duration
	if success > 0 {
		avgLatency = time.Duration(latencySum / success)
	}
	if minLat == 1<<63-1 {
		minLat = 0
	}

	return StressTestResult{
		TotalRequests:  total,
		SuccessfulReqs: success,
		FailedReqs:     failed,
		BytesRead:      atomic.LoadInt64(&bytesRead),
		TotalDuration:  duration,
		AvgLatency:     avgLatency,
		MinLatency:     time.Duration(minLat),
		MaxLatency:     time.Duration(maxLat),
		RequestsPerSec: float64(total) / duration.Seconds(),
	}
}

func runWorker(client *http.Client, config StressTestConfig, stop chan struct{}, totalReqs, successReqs, failedReqs, bytesRead, totalLatency, minLatency, maxLatency *int64) {
	for {
		select {
		case <-stop:
			return
		default:
			n, latency, err := sendRequest(client, config)
			atomic.AddInt64(totalReqs, 1)

			if err != nil {
				atomic.AddInt64(failedReqs, 1)
				time.Sleep(10 * time.Millisecond)
				continue
			}

			atomic.AddInt64(successReqs, 1)
			atomic.AddInt64(bytesRead, n)
			atomic.AddInt64(totalLatency, int64(latency))

			lat := int64(latency)
			for {
				old := atomic.LoadInt64(minLatency)
				if lat >= old || atomic.CompareAndSwapInt64(minLatency, old, lat) {
					break
				}
			}
			for {
				old := atomic.LoadInt64(maxLatency)
				if lat <= old || atomic.CompareAndSwapInt64(maxLatency, old, lat) {
					break
				}
			}
		}
	}
}

func sendRequest(client *http.Client, config StressTestConfig) (int64, time.Duration, error) {
	req, err := http.NewRequest(http.MethodGet, config.URL, nil)
	if err != nil {
		return 0, 0, err
	}
	if config.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+config.AuthToken)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(io.Discard, resp.Body)
	latency := time.Since(start)
	if err != nil {
		return n, latency, err
	}
	if resp.StatusCode != http.StatusOK {
		return n, latency, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return n, latency, nil
}

func printResults(result StressTestResult) {
	fmt.Println("=== Results ===")
	fmt.Printf("Duration:        %v\n", result.TotalDuration.Round(time.Millisecond))
	fmt.Printf("Total Requests:  %d\n", result.TotalRequests)
	if result.TotalRequests > 0 {
		fmt.Printf("Successful:      %d (%.2f%%)\n", result.SuccessfulReqs, float64(result.SuccessfulReqs)/float64(result.TotalRequests)*100)
		fmt.Printf("Failed:          %d (%.2f%%)\n", result.FailedReqs, float64(result.FailedReqs)/float64(result.TotalRequests)*100)
	}
	fmt.Printf("Bytes read:      %d\n", result.BytesRead)
	fmt.Printf("Requests/sec:    %.2f\n", result.RequestsPerSec)
	fmt.Printf("Avg Latency:     %v\n", result.AvgLatency.Round(time.Microsecond))
	fmt.Printf("Min Latency:     %v\n", result.MinLatency.Round(time.Microsecond))
	fmt.Printf("Max Latency:     %v\n", result.MaxLatency.Round(time.Microsecond))
}

func saveReport(config StressTestConfig, result StressTestResult) {
	report := map[string]interface{}{
		"config": map[string]interface{}{
			"url":         config.URL,
			"concurrency": config.Concurrency,
			"duration":    config.Duration.String(),
		},
		"results": map[string]interface{}{
			"total_requests":   result.TotalRequests,
			"successful":       result.SuccessfulReqs,
			"failed":           result.FailedReqs,
			"bytes_read":       result.BytesRead,
			"requests_per_sec": result.RequestsPerSec,
			"avg_latency_ms":   float64(result.AvgLatency.Microseconds()) / 1000,
			"min_latency_ms":   float64(result.MinLatency.Microseconds()) / 1000,
			"max_latency_ms":   float64(result.MaxLatency.Microseconds()) / 1000,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	}

	data, _ := json.MarshalIndent(report, "", "  ")
	if err := os.WriteFile(config.ReportFile, data, 0644); err != nil {
		log.Printf("Failed to write report: %v", err)
	} else {
		fmt.Printf("Report saved to: %s\n", config.ReportFile)
	}
}
