package store

import (
	"context"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/models"
)

// CredentialStore verifies login credentials. Lookup misses and password
// mismatches are both reported as ErrInvalidCredentials so callers cannot tell
// them apart.
type CredentialStore interface {
	Verify(ctx context.Context, username, password string) (models.User, error)
}

type IssueStore interface {
	GetIssue(ctx context.Context, id int) (models.Issue, error)
	GetSimilar(ctx context.Context, id int) ([]models.SimilarIssue, error)
	GetQueryIndex(ctx context.Context, id int) (models.QueryIndex, error)
}
