package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
)

// simulate drives a running api-server with a pool of fake patients:
// browsing the catalog, booking open slots, and cancelling a fraction of
// the bookings. It reports per-operation latency and outcome counts.

type SimConfig struct {
	APIBaseURL  string
	Duration    time.Duration
	Workers     int
	BookRatio   float64
	CancelRatio float64
}

type slotRef struct {
	HospitalID string
	SlotID     string
}

type DataPool struct {
	mu           sync.RWMutex
	slots        []slotRef
	appointments []string
}

func (dp *DataPool) TakeSlot() (slotRef, bool) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if len(dp.slots) == 0 {
		return slotRef{}, false
	}
	idx := rand.Intn(len(dp.slots))
	ref := dp.slots[idx]
	dp.slots = append(dp.slots[:idx], dp.slots[idx+1:]...)
	return ref, true
}

func (dp *DataPool) AddAppointment(id string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.appointments = append(dp.appointments, id)
}

func (dp *DataPool) TakeAppointment() (string, bool) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if len(dp.appointments) == 0 {
		return "", false
	}
	idx := rand.Intn(len(dp.appointments))
	id := dp.appointments[idx]
	dp.appointments = append(dp.appointments[:idx], dp.appointments[idx+1:]...)
	return id, true
}

type OperationMetrics struct {
	Total     int64
	Success   int64
	Conflict  int64
	Error     int64
	mu        sync.Mutex
	Latencies []time.Duration
}

func (om *OperationMetrics) Record(latency time.Duration, success, conflict bool) {
	atomic.AddInt64(&om.Total, 1)
	switch {
	case success:
		atomic.AddInt64(&om.Success, 1)
	case conflict:
		atomic.AddInt64(&om.Conflict, 1)
	default:
		atomic.AddInt64(&om.Error, 1)
	}

	om.mu.Lock()
	om.Latencies = append(om.Latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.Latencies) == 0 {
		return 0, 0, 0
	}

	latencies := append([]time.Duration(nil), om.Latencies...)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	avg = sum / time.Duration(len(latencies))
	p50 = latencies[len(latencies)*50/100]
	p95 = latencies[min(len(latencies)*95/100, len(latencies)-1)]
	return avg, p50, p95
}

type Metrics struct {
	Book   OperationMetrics
	Cancel OperationMetrics
	Browse OperationMetrics
}

type Simulator struct {
	cfg     SimConfig
	pool    *DataPool
	client  *http.Client
	metrics Metrics
	logger  zerolog.Logger
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := loadConfig()
	logger.Info().
		Str("base_url", cfg.APIBaseURL).
		Dur("duration", cfg.Duration).
		Int("workers", cfg.Workers).
		Msg("simulator starting")

	sim := &Simulator{
		cfg:    cfg,
		pool:   &DataPool{},
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}

	if err := sim.loadSlots(); err != nil {
		logger.Fatal().Err(err).Msg("load slots from API")
	}
	logger.Info().Int("open_slots", len(sim.pool.slots)).Msg("slot pool loaded")

	deadline := time.Now().Add(cfg.Duration)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sim.worker(deadline)
		}()
	}
	wg.Wait()

	sim.report()
}

func loadConfig() SimConfig {
	return SimConfig{
		APIBaseURL:  envStr("SIM_API_BASE_URL", "http://localhost:8080"),
		Duration:    envDuration("SIM_DURATION", 30*time.Second),
		Workers:     envInt("SIM_WORKERS", 4),
		BookRatio:   envFloat("SIM_BOOK_RATIO", 0.5),
		CancelRatio: envFloat("SIM_CANCEL_RATIO", 0.2),
	}
}

// loadSlots pulls every hospital's open slots for the whole window so
// workers have real slot IDs to book.
func (s *Simulator) loadSlots() error {
	resp, err := s.client.Get(s.cfg.APIBaseURL + "/hospitals")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var hospitals []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hospitals); err != nil {
		return err
	}

	for _, h := range hospitals {
		detail, err := s.client.Get(s.cfg.APIBaseURL + "/hospitals/" + h.ID)
		if err != nil {
			return err
		}
		var d struct {
			SlotDates []string `json:"slot_dates"`
		}
		err = json.NewDecoder(detail.Body).Decode(&d)
		detail.Body.Close()
		if err != nil {
			return err
		}

		for _, date := range d.SlotDates {
			day, err := s.client.Get(s.cfg.APIBaseURL + "/hospitals/" + h.ID + "/slots?date=" + date)
			if err != nil {
				return err
			}
			var bands struct {
				Morning   []slotJSON `json:"morning"`
				Afternoon []slotJSON `json:"afternoon"`
				Evening   []slotJSON `json:"evening"`
			}
			err = json.NewDecoder(day.Body).Decode(&bands)
			day.Body.Close()
			if err != nil {
				return err
			}
			for _, grp := range [][]slotJSON{bands.Morning, bands.Afternoon, bands.Evening} {
				for _, sl := range grp {
					if !sl.IsBooked {
						s.pool.slots = append(s.pool.slots, slotRef{HospitalID: h.ID, SlotID: sl.ID})
					}
				}
			}
		}
	}
	return nil
}

type slotJSON struct {
	ID       string `json:"id"`
	IsBooked bool   `json:"is_booked"`
}

func (s *Simulator) worker(deadline time.Time) {
	// One faker per worker so draws never contend on a shared lock.
	faker := gofakeit.New(0)

	for time.Now().Before(deadline) {
		r := rand.Float64()
		switch {
		case r < s.cfg.BookRatio:
			s.book(faker)
		case r < s.cfg.BookRatio+s.cfg.CancelRatio:
			s.cancel()
		default:
			s.browse()
		}
	}
}

func (s *Simulator) book(faker *gofakeit.Faker) {
	ref, ok := s.pool.TakeSlot()
	if !ok {
		s.browse()
		return
	}

	body, _ := json.Marshal(map[string]string{
		"hospital_id":   ref.HospitalID,
		"slot_id":       ref.SlotID,
		"patient_name":  faker.Name(),
		"patient_email": faker.Email(),
		"patient_phone": faker.Phone(),
		"reason":        "",
	})

	start := time.Now()
	resp, err := s.client.Post(s.cfg.APIBaseURL+"/appointments", "application/json", bytes.NewReader(body))
	latency := time.Since(start)
	if err != nil {
		s.metrics.Book.Record(latency, false, false)
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var appt struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&appt); err == nil {
			s.pool.AddAppointment(appt.ID)
		}
		s.metrics.Book.Record(latency, true, false)
	case http.StatusConflict:
		s.metrics.Book.Record(latency, false, true)
	default:
		io.Copy(io.Discard, resp.Body)
		s.metrics.Book.Record(latency, false, false)
	}
}

func (s *Simulator) cancel() {
	id, ok := s.pool.TakeAppointment()
	if !ok {
		s.browse()
		return
	}

	req, _ := http.NewRequest(http.MethodDelete, s.cfg.APIBaseURL+"/appointments/"+id, nil)
	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)
	if err != nil {
		s.metrics.Cancel.Record(latency, false, false)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	s.metrics.Cancel.Record(latency, resp.StatusCode == http.StatusNoContent, false)
}

func (s *Simulator) browse() {
	paths := []string{
		"/hospitals",
		"/locations/states",
		"/appointments?view=today",
		"/admin/stats",
	}
	path := paths[rand.Intn(len(paths))]

	start := time.Now()
	resp, err := s.client.Get(s.cfg.APIBaseURL + path)
	latency := time.Since(start)
	if err != nil {
		s.metrics.Browse.Record(latency, false, false)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	s.metrics.Browse.Record(latency, resp.StatusCode == http.StatusOK, false)
}

func (s *Simulator) report() {
	fmt.Println()
	fmt.Println("=== simulation results ===")
	printOp("book", &s.metrics.Book)
	printOp("cancel", &s.metrics.Cancel)
	printOp("browse", &s.metrics.Browse)
}

func printOp(name string, om *OperationMetrics) {
	avg, p50, p95 := om.Stats()
	fmt.Printf("%-8s total=%-6d success=%-6d conflict=%-6d error=%-6d avg=%-10s p50=%-10s p95=%s\n",
		name,
		atomic.LoadInt64(&om.Total),
		atomic.LoadInt64(&om.Success),
		atomic.LoadInt64(&om.Conflict),
		atomic.LoadInt64(&om.Error),
		avg, p50, p95)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
