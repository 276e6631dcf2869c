package ws

import (
	"encoding/json"
	"time"

	"job-portal/internal/domain/job"
)

type JobPostedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	City      string `json:"city"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes job events into the hub. It satisfies the mutation
// usecase's JobNotifier.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobPosted(j job.Job) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobPostedEvent{
		Type:      "job_posted",
		JobID:     j.ID.String(),
		Title:     j.Title,
		Category:  j.Category,
		City:      j.City,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
