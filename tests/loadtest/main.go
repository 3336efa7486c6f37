package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	owner        = "CONTRACT_OWNER"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numOracles   = 10
	numUsers     = 500
)

var locations = []string{"New York", "London", "Tokyo", "Lima", "Oslo", "Nairobi"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== WeatherLedger Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Oracles: %d | Users: %d | Locations: %d\n\n", numOracles, numUsers, len(locations))

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Print("Authorizing oracles... ")
	for i := 0; i < numOracles; i++ {
		if r := call(owner, "authorize-oracle", oracleName(i)); r.err {
			fmt.Printf("FAILED: status %d\n", r.status)
			return
		}
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding data (POST /call) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.5 {
			return doAddWeather(rng)
		}
		return doRecordPrediction(rng)
	})

	fmt.Println("\n--- Phase 2: Mixed load (60% writes, 40% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doAddWeather(rng)
		case r < 0.60:
			return doRecordPrediction(rng)
		case r < 0.75:
			return doGetUserAccuracy(rng)
		case r < 0.90:
			return doGetLocationAccuracy(rng)
		default:
			return doIsOracle(rng)
		}
	})

	fmt.Println("\n--- Phase 3: Read-heavy load (10% writes, 90% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doRecordPrediction(rng)
		case r < 0.45:
			return doGetUserAccuracy(rng)
		case r < 0.80:
			return doGetLocationAccuracy(rng)
		default:
			return doIsOracle(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-34s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-34s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 100))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func oracleName(i int) string {
	return fmt.Sprintf("oracle%d", i+1)
}

func call(sender, method string, args ...any) result {
	endpoint := "POST /call " + method
	data, _ := json.Marshal(map[string]any{"method": method, "args": args})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/call", bytes.NewReader(data))
	if err != nil {
		return result{endpoint, 0, 0, true}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Sender", sender)

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func get(endpoint, path string, query url.Values) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path + "?" + query.Encode())
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doAddWeather(rng *rand.Rand) result {
	return call(oracleName(rng.Intn(numOracles)), "add-weather-data",
		locations[rng.Intn(len(locations))],
		rng.Intn(60)-20, rng.Intn(101), rng.Intn(40), rng.Intn(50))
}

func doRecordPrediction(rng *rand.Rand) result {
	return call(owner, "record-prediction-result",
		fmt.Sprintf("user%d", rng.Intn(numUsers)),
		locations[rng.Intn(len(locations))],
		rng.Float64() < 0.7)
}

func doGetUserAccuracy(rng *rand.Rand) result {
	return get("GET /accuracy/user", "/accuracy/user", url.Values{"id": {fmt.Sprintf("user%d", rng.Intn(numUsers))}})
}

func doGetLocationAccuracy(rng *rand.Rand) result {
	return get("GET /accuracy/location", "/accuracy/location", url.Values{"id": {locations[rng.Intn(len(locations))]}})
}

func doIsOracle(rng *rand.Rand) result {
	return get("GET /oracle", "/oracle", url.Values{"id": {oracleName(rng.Intn(numOracles + 2))}})
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
