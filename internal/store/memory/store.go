package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/models"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// EscalatedIssueID is the demo issue representing an escalated cross-system
// incident: it has a fixed record and no similar issues.
const EscalatedIssueID = 99999

// maxSimilarPerSource caps how many suggestions each external tracker
// contributes to the merged list.
const maxSimilarPerSource = 4

// Store holds the seeded mock data plus a cache of issues synthesized for ids
// that were never seeded. The cache is shared across requests; synthesis is
// deterministic per id, so concurrent inserts for the same id are harmless.
type Store struct {
	mu      sync.RWMutex
	issues  map[int]models.Issue
	similar []models.SimilarIssue
	indexes map[int]models.QueryIndex
	users   map[string]models.User
}

func NewStore() *Store {
	return &Store{
		issues:  seedIssues(),
		similar: rankSimilar(seedSimilarIssues()),
		indexes: seedQueryIndexes(),
		users:   seedUsers(),
	}
}

func (s *Store) Verify(ctx context.Context, username, password string) (models.User, error) {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, store.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, store.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Store) GetIssue(ctx context.Context, id int) (models.Issue, error) {
	if id == EscalatedIssueID {
		return escalatedIssue(), nil
	}

	s.mu.RLock()
	issue, ok := s.issues[id]
	s.mu.RUnlock()
	if ok {
		return issue, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if issue, ok := s.issues[id]; ok {
		return issue, nil
	}
	issue = synthesizeIssue(id)
	s.issues[id] = issue
	return issue, nil
}

func (s *Store) GetSimilar(ctx context.Context, id int) ([]models.SimilarIssue, error) {
	if id == EscalatedIssueID {
		return nil, store.ErrNoSimilarIssues
	}

	// Materialize unseen ids so detail and similar lookups stay consistent.
	if _, err := s.GetIssue(ctx, id); err != nil {
		return nil, err
	}

	result := make([]models.SimilarIssue, len(s.similar))
	copy(result, s.similar)
	return result, nil
}

func (s *Store) GetQueryIndex(ctx context.Context, id int) (models.QueryIndex, error) {
	s.mu.RLock()
	index, ok := s.indexes[id]
	s.mu.RUnlock()
	if !ok {
		return models.QueryIndex{IssueID: id, QueryCount: 0, Queries: []models.IndexedQuery{}}, nil
	}
	queries := make([]models.IndexedQuery, len(index.Queries))
	copy(queries, index.Queries)
	index.Queries = queries
	return index, nil
}

func synthesizeIssue(id int) models.Issue {
	return models.Issue{
		ID:          id,
		Title:       fmt.Sprintf("Critical Bug in Authentication Module #%d", id),
		Description: "This is a critical issue that needs immediate attention. The authentication module is failing to validate user credentials properly in certain edge cases. This affects user login functionality and could potentially lead to security vulnerabilities if not addressed promptly.",
		Status:      models.StatusOpen,
		Priority:    models.PriorityHigh,
		Assignee:    "Sarah Johnson",
		Created:     "2024-01-15 09:30:00",
		Updated:     "2024-01-16 14:22:00",
	}
}

func escalatedIssue() models.Issue {
	return models.Issue{
		ID:          EscalatedIssueID,
		Title:       "Redmine Authentication Issue",
		Description: "Critical authentication issue in Redmine system causing login failures for multiple users. This issue requires immediate attention to prevent service disruption.",
		Status:      models.StatusOpen,
		Priority:    models.PriorityHigh,
		Assignee:    "Michael Johnson",
		Created:     "2024-01-23 08:15:00",
		Updated:     "2024-01-23 12:30:00",
	}
}

// rankSimilar keeps at most maxSimilarPerSource entries per tracker, dropping
// the lowest-scored ones, then orders the merged list by similarity descending.
func rankSimilar(all []models.SimilarIssue) []models.SimilarIssue {
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SimilarityPercentage > all[j].SimilarityPercentage
	})

	perSource := make(map[string]int)
	ranked := make([]models.SimilarIssue, 0, len(all))
	for _, issue := range all {
		if perSource[issue.Source] >= maxSimilarPerSource {
			continue
		}
		perSource[issue.Source]++
		ranked = append(ranked, issue)
	}
	return ranked
}
