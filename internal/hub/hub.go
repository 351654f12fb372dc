package hub

import (
	"log"
	"sync"

	"loglens/internal/report"
)

const subscriberBuffer = 16

// Hub broadcasts fresh analysis reports to all subscribers. Each re-analysis
// of a source produces one report snapshot; slow subscribers miss snapshots
// rather than blocking the pipeline.
type Hub struct {
	mu          sync.RWMutex
	subscribers []chan report.Report
	latest      report.Report
	hasLatest   bool
	dropped     int64
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{}
}

// Subscribe returns a buffered channel that will receive every subsequent
// report snapshot. Multiple consumers can subscribe; each gets a copy.
func (h *Hub) Subscribe() <-chan report.Report {
	ch := make(chan report.Report, subscriberBuffer)
	h.mu.Lock()
	h.subscribers = append(h.subscribers, ch)
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel, so departed
// consumers stop accumulating drops. Unknown channels are ignored.
func (h *Hub) Unsubscribe(sub <-chan report.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, ch := range h.subscribers {
		if ch == sub {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// Latest returns the most recently published report, if any.
func (h *Hub) Latest() (report.Report, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasLatest
}

// Dropped returns the total number of snapshots dropped for slow consumers.
func (h *Hub) Dropped() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

// Publish records r as the latest report and broadcasts it. If a
// subscriber's channel is full, the snapshot is dropped for that subscriber.
func (h *Hub) Publish(r report.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = r
	h.hasLatest = true

	for _, ch := range h.subscribers {
		select {
		case ch <- r:
		default:
			h.dropped++
			log.Printf("hub: dropped report for slow consumer (total dropped: %d)", h.dropped)
		}
	}
}

// Close closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subscribers {
		close(ch)
	}
	h.subscribers = nil
}
