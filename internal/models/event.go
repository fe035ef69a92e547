package models

// ActivityEvent is the payload published to the activity topic when a user
// mutates their training data. Publishing is best effort and never affects the
// outcome of the request that produced it.
type ActivityEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	EntityID  string `json:"entity_id"`
}
