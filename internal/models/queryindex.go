package models

type IndexedQuery struct {
	ID            int     `json:"id"`
	QueryText     string  `json:"queryText"`
	Description   string  `json:"description"`
	ExecutionTime float64 `json:"executionTime"`
	ResultCount   int     `json:"resultCount"`
}

// QueryIndex lists the MySQL queries recorded against an issue. Issues with no
// recorded queries get a zero-count index, not an error.
type QueryIndex struct {
	IssueID    int            `json:"issueId"`
	QueryCount int            `json:"queryCount"`
	Queries    []IndexedQuery `json:"queries"`
}
