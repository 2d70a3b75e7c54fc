package models

import "time"

// PushNotification is the fire-and-forget payload handed to the push
// collaborator, keyed by the recipient's user id. Formatting and delivery
// happen downstream.
type PushNotification struct {
	UserID    string         `json:"user_id"`
	Event     string         `json:"event"`
	Title     string         `json:"title,omitempty"`
	Body      string         `json:"body,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
