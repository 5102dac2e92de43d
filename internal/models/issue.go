package models

// Issue statuses and priorities as they appear on the wire.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Issue struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}

// SimilarIssue is an issue from an external tracker (redmine, mantis) with a
// precomputed similarity score against the looked-up issue.
type SimilarIssue struct {
	Issue
	Source               string  `json:"source"`
	ContactPerson        string  `json:"contactPerson"`
	SimilarityPercentage float64 `json:"similarity_percentage"`
	Resolution           string  `json:"resolution,omitempty"`
	ClosedBy             string  `json:"closedBy,omitempty"`
}
