package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	rps      = 5
	duration = 3 * time.Minute
	wizards  = 50
)

// targetHost: адрес консоли; переопределяется LOADTEST_TARGET.
var targetHost = "http://localhost:8080"

type action struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type draft struct {
	ID string `json:"id"`
}

var (
	wizardIDs []string
	httpc     = &http.Client{Timeout: 10 * time.Second}
	headers   http.Header
)

func postJSON(url string, body any) (int, []byte, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header = headers.Clone()
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.Bytes(), nil
}

// Seed
func seedData() error {
	log.Println("Seeding: opening creation wizards...")

	for i := 1; i <= wizards; i++ {
		status, body, err := postJSON(targetHost+"/console/wizards", nil)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN wizards returned %d\n", status)
			continue
		}

		var d draft
		if err := json.Unmarshal(body, &d); err != nil || d.ID == "" {
			log.Printf("WARN wizards returned unreadable body: %v\n", err)
			continue
		}
		wizardIDs = append(wizardIDs, d.ID)
		time.Sleep(20 * time.Millisecond)
	}

	if len(wizardIDs) == 0 {
		return fmt.Errorf("no wizards were created")
	}
	log.Printf("Seed completed: wizards=%d\n", len(wizardIDs))
	return nil
}

func getTarget(t *vegeta.Target, path string) {
	t.Method = http.MethodGet
	t.URL = targetHost + path
	t.Body = nil
	t.Header = headers.Clone()
	t.Header.Set("Accept", "application/json")
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 40% GET /console/users
		if r < 0.40 {
			getTarget(t, "/console/users?memberStatus=all")
			return nil
		}

		// 20% GET /console/wizards/:id
		if r < 0.60 {
			getTarget(t, "/console/wizards/"+wizardIDs[rand.Intn(len(wizardIDs))])
			return nil
		}

		// 15% GET /console/events
		if r < 0.75 {
			getTarget(t, "/console/events")
			return nil
		}

		// 15% GET /console/catalog/roles
		if r < 0.90 {
			getTarget(t, "/console/catalog/roles")
			return nil
		}

		// 10% POST /console/wizards/:id/actions
		body, _ := json.Marshal(action{
			Type: "SetPersonalField",
			Payload: map[string]string{
				"field": "firstName",
				"value": fmt.Sprintf("Load %d", time.Now().UnixNano()),
			},
		})
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/console/wizards/%s/actions", targetHost, wizardIDs[rand.Intn(len(wizardIDs))])
		t.Body = body
		t.Header = headers.Clone()
		t.Header.Set("Content-Type", "application/json")
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "console-load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	if v := os.Getenv("LOADTEST_TARGET"); v != "" {
		targetHost = v
	}
	headers = http.Header{}
	if cookie := os.Getenv("LOADTEST_COOKIE"); cookie != "" {
		headers.Set("Cookie", cookie)
	}

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
