package models

import "time"

// SearchState is the fetch lifecycle state of a search session.
type SearchState string

const (
	StateIdle    SearchState = "idle"
	StateLoading SearchState = "loading"
	StateSuccess SearchState = "success"
	StateError   SearchState = "error"
)

// SearchView is a point-in-time view of a session: the lifecycle state,
// the inline error message when in StateError, and the canonical product
// set with the current filters and sort applied.
type SearchView struct {
	State    SearchState `json:"state"`
	Query    string      `json:"query"`
	Error    string      `json:"error,omitempty"`
	Products []Product   `json:"products"`
}

// Notification is a transient user-facing message, delivered on a
// separate channel from the inline error kept on the session.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

const SeverityError = "destructive"

// SearchRecord is one completed search, kept for history.
type SearchRecord struct {
	Query       string    `json:"query" bson:"query"`
	Source      string    `json:"source" bson:"source"`
	ResultCount int       `json:"result_count" bson:"result_count"`
	DurationMs  int64     `json:"duration_ms" bson:"duration_ms"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
