package models

import "time"

// Feedback is a free-text submission with topic tags. It has no relation to
// inspections; it only shares the same role-gated visibility pattern.
type Feedback struct {
	ID          string         `json:"id"`
	Message     string         `json:"message"`
	Topics      []string       `json:"topics,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	Status      FeedbackStatus `json:"status"`
	SubmittedBy string         `json:"submitted_by,omitempty"`
}
