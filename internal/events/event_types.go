package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTeacherRegistered EventType = "teacher_registered"
	EventTeacherLoggedIn   EventType = "teacher_logged_in"
	EventProfileUpdated    EventType = "profile_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TeacherID string      `json:"teacher_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TeacherRegisteredPayload payload.
type TeacherRegisteredPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TeacherLoggedInPayload payload.
type TeacherLoggedInPayload struct {
	Email string `json:"email"`
}

// ProfileUpdatedPayload payload.
type ProfileUpdatedPayload struct {
	UpdatedRows int64 `json:"updated_rows"`
}
