package store

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSimilarIssues    = errors.New("no similar issues found")
)
