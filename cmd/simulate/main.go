// Command simulate drives a running api-server through a scripted clinic
// day: it pages the agenda, drafts and saves appointments for seeded
// patients, then selects and deletes a few of them. Useful as an end-to-end
// smoke against a live instance.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type simConfig struct {
	BaseURL  string
	Bookings int
}

type counters struct {
	requests  int
	saved     int
	conflicts int
	deleted   int
	errors    int
	elapsed   time.Duration
}

type patientRec struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type agendaState struct {
	Date  string `json:"date"`
	Slots []struct {
		Time        string `json:"time"`
		Appointment *struct {
			ID string `json:"id"`
		} `json:"appointment"`
	} `json:"slots"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := simConfig{
		BaseURL:  getEnv("API_BASE_URL", "http://127.0.0.1:8080"),
		Bookings: 8,
	}

	log.Info().Str("base_url", cfg.BaseURL).Msg("simulate starting")
	start := time.Now()

	var c counters
	client := &http.Client{Timeout: 10 * time.Second}

	var patients []patientRec
	if err := getJSON(client, cfg.BaseURL+"/patients", &patients, &c); err != nil {
		log.Fatal().Err(err).Msg("list patients")
	}
	if len(patients) == 0 {
		log.Fatal().Msg("no patients in dataset")
	}

	// Walk a few days back and forth around today.
	for _, delta := range []int{1, 1, -1, -1, 1} {
		if err := postJSON(client, cfg.BaseURL+"/agenda/navigate", map[string]any{"delta": delta}, nil, &c); err != nil {
			c.errors++
		}
	}

	var ag agendaState
	if err := getJSON(client, cfg.BaseURL+"/agenda", &ag, &c); err != nil {
		log.Fatal().Err(err).Msg("read agenda")
	}

	var created []string
	for i := 0; i < cfg.Bookings; i++ {
		p := patients[i%len(patients)]
		slot := ag.Slots[i%len(ag.Slots)]

		if err := postJSON(client, cfg.BaseURL+"/agenda/draft", map[string]any{"date": ag.Date}, nil, &c); err != nil {
			c.errors++
			continue
		}
		patch := map[string]any{"patient_id": p.ID, "time": slot.Time, "doctor_name": "Dr. Roberto Santos"}
		if err := patchJSON(client, cfg.BaseURL+"/agenda/draft", patch, &c); err != nil {
			c.errors++
			continue
		}

		var saved struct {
			ID string `json:"id"`
		}
		err := postJSON(client, cfg.BaseURL+"/agenda/save", nil, &saved, &c)
		switch {
		case err == nil:
			c.saved++
			created = append(created, saved.ID)
		case err == errConflict:
			c.conflicts++
			// Slot was taken; drop the draft before moving on.
			_ = postJSON(client, cfg.BaseURL+"/agenda/cancel", nil, nil, &c)
		default:
			c.errors++
		}
	}

	// Unbook half of what we created, confirming each delete.
	for i, id := range created {
		if i%2 == 1 {
			continue
		}
		if err := postJSON(client, cfg.BaseURL+"/agenda/select", map[string]any{"appointment_id": id}, nil, &c); err != nil {
			c.errors++
			continue
		}
		if err := deleteJSON(client, cfg.BaseURL+"/agenda/selection", map[string]any{"confirm": true}, &c); err != nil {
			c.errors++
			continue
		}
		c.deleted++
	}

	c.elapsed = time.Since(start)
	log.Info().
		Int("requests", c.requests).
		Int("saved", c.saved).
		Int("conflicts", c.conflicts).
		Int("deleted", c.deleted).
		Int("errors", c.errors).
		Dur("elapsed", c.elapsed).
		Msg("simulate complete")
}

var errConflict = fmt.Errorf("conflict")

func do(client *http.Client, method, url string, body any, out any, c *counters) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.requests++
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		io.Copy(io.Discard, resp.Body)
		return errConflict
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, raw)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func getJSON(client *http.Client, url string, out any, c *counters) error {
	return do(client, http.MethodGet, url, nil, out, c)
}

func postJSON(client *http.Client, url string, body, out any, c *counters) error {
	if body == nil {
		body = map[string]any{}
	}
	return do(client, http.MethodPost, url, body, out, c)
}

func patchJSON(client *http.Client, url string, body any, c *counters) error {
	return do(client, http.MethodPatch, url, body, nil, c)
}

func deleteJSON(client *http.Client, url string, body any, c *counters) error {
	return do(client, http.MethodDelete, url, body, nil, c)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
