package messaging

import (
	"sync"
	"time"
)

type UserEvent struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

type PostEvent struct {
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CommentID string    `json:"comment_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Recorder is a Publisher that keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []RecordedEvent
}

type RecordedEvent struct {
	Subject string
	Event   any
}

func (r *Recorder) Publish(subject string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, RecordedEvent{Subject: subject, Event: event})
	return nil
}

func (r *Recorder) Close() {}

// Subjects lists the recorded subjects in publish order.
func (r *Recorder) Subjects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	subjects := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		subjects = append(subjects, e.Subject)
	}
	return subjects
}
