// Package journal appends a JSON line for every successful write operation.
// It is a fire-and-forget observer: recording never blocks a request, and a
// broken journal never fails the primary operation.
package journal

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

const bufferSize = 256

// Event is a single journaled write.
type Event struct {
	Time   time.Time `json:"ts"`
	UserID int64     `json:"user_id"`
	Op     string    `json:"op"`
	TodoID int64     `json:"todo_id,omitempty"`
}

// Journal owns the journal file and a single writer goroutine.
type Journal struct {
	events chan Event
	done   chan struct{}
	f      *os.File
}

// Open opens (or creates) the journal file in append mode and starts the
// writer. An empty path returns a nil Journal, on which Record and Close are
// no-ops.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	j := &Journal{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
		f:      f,
	}
	go j.run()
	return j, nil
}

// Record enqueues a write event. If the buffer is full the event is dropped;
// the journal trades completeness for never stalling a request.
func (j *Journal) Record(op string, userID, todoID int64) {
	if j == nil {
		return
	}
	ev := Event{Time: time.Now().UTC(), UserID: userID, Op: op, TodoID: todoID}
	select {
	case j.events <- ev:
	default:
		log.Printf("[Journal] buffer full, dropping %s event for user %d", op, userID)
	}
}

// Close flushes queued events and closes the file.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	close(j.events)
	<-j.done
	return j.f.Close()
}

func (j *Journal) run() {
	defer close(j.done)
	enc := json.NewEncoder(j.f)
	for ev := range j.events {
		if err := enc.Encode(ev); err != nil {
			log.Printf("[Journal] write event: %v", err)
		}
	}
}
