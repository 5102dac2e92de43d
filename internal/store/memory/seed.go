package memory

import "github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/models"

// Demo credentials: Poovarasan / secret.
func seedUsers() map[string]models.User {
	return map[string]models.User{
		"Poovarasan": {
			Username:     "Poovarasan",
			FullName:     "Poovarasan",
			PasswordHash: "$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW",
		},
	}
}

func seedIssues() map[int]models.Issue {
	return map[int]models.Issue{
		1234: {
			ID:          1234,
			Title:       "User login authentication error",
			Description: "Users are experiencing intermittent login failures with 'Invalid credentials' message even when using correct username and password.",
			Status:      models.StatusOpen,
			Priority:    models.PriorityHigh,
			Assignee:    "John Doe",
			Created:     "2024-01-20 10:30:00",
			Updated:     "2024-01-22 15:45:00",
		},
		5678: {
			ID:          5678,
			Title:       "Database connection timeout",
			Description: "Application occasionally fails to connect to the database during peak hours.",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityMedium,
			Assignee:    "Jane Smith",
			Created:     "2024-01-21 09:15:00",
			Updated:     "2024-01-23 11:20:00",
		},
	}
}

func seedSimilarIssues() []models.SimilarIssue {
	return []models.SimilarIssue{
		{
			Issue: models.Issue{
				ID:          101,
				Title:       "Login timeout on mobile app",
				Description: "Mobile users experiencing login timeouts after 30 seconds",
				Status:      models.StatusResolved,
				Priority:    models.PriorityHigh,
				Assignee:    "Alice Johnson",
				Created:     "2024-01-15 14:20:00",
				Updated:     "2024-01-18 16:30:00",
			},
			Source:               "redmine",
			ContactPerson:        "alice.johnson@company.com",
			SimilarityPercentage: 92.5,
			Resolution:           "Fixed timeout configuration in mobile client",
			ClosedBy:             "Alice Johnson",
		},
		{
			Issue: models.Issue{
				ID:          102,
				Title:       "Authentication service intermittent failures",
				Description: "Auth service occasionally returns 500 errors during login attempts",
				Status:      models.StatusClosed,
				Priority:    models.PriorityHigh,
				Assignee:    "Bob Wilson",
				Created:     "2024-01-12 09:45:00",
				Updated:     "2024-01-16 13:15:00",
			},
			Source:               "redmine",
			ContactPerson:        "bob.wilson@company.com",
			SimilarityPercentage: 88.3,
			Resolution:           "Updated authentication middleware and improved error handling",
			ClosedBy:             "Bob Wilson",
		},
		{
			Issue: models.Issue{
				ID:          103,
				Title:       "Login button not working",
				Description: "Login button intermittently unresponsive on the web client",
				Status:      models.StatusOpen,
				Priority:    models.PriorityHigh,
				Assignee:    "Emma Taylor",
				Created:     "2024-01-17 10:05:00",
				Updated:     "2024-01-21 09:40:00",
			},
			Source:               "redmine",
			ContactPerson:        "emma.taylor@company.com",
			SimilarityPercentage: 81.7,
		},
		{
			Issue: models.Issue{
				ID:          104,
				Title:       "Incorrect error on login",
				Description: "Login form shows a generic error instead of the credential validation message",
				Status:      models.StatusOpen,
				Priority:    models.PriorityMedium,
				Assignee:    "Frank Moore",
				Created:     "2024-01-18 13:25:00",
				Updated:     "2024-01-22 08:50:00",
			},
			Source:               "redmine",
			ContactPerson:        "frank.moore@company.com",
			SimilarityPercentage: 78.9,
		},
		{
			Issue: models.Issue{
				ID:          105,
				Title:       "UI freeze on login",
				Description: "Browser tab freezes when submitting the login form on slow connections",
				Status:      models.StatusResolved,
				Priority:    models.PriorityLow,
				Assignee:    "Grace Lee",
				Created:     "2024-01-10 15:40:00",
				Updated:     "2024-01-14 11:05:00",
			},
			Source:               "redmine",
			ContactPerson:        "grace.lee@company.com",
			SimilarityPercentage: 74.2,
			Resolution:           "Moved password hashing off the UI thread",
			ClosedBy:             "Grace Lee",
		},
		{
			Issue: models.Issue{
				ID:          201,
				Title:       "User session management issues",
				Description: "Users getting logged out unexpectedly during active sessions",
				Status:      models.StatusOpen,
				Priority:    models.PriorityHigh,
				Assignee:    "Carol Davis",
				Created:     "2024-01-19 11:30:00",
				Updated:     "2024-01-22 14:45:00",
			},
			Source:               "mantis",
			ContactPerson:        "carol.davis@company.com",
			SimilarityPercentage: 90.2,
		},
		{
			Issue: models.Issue{
				ID:          202,
				Title:       "Password reset functionality broken",
				Description: "Users unable to reset passwords through email link",
				Status:      models.StatusInProgress,
				Priority:    models.PriorityHigh,
				Assignee:    "David Brown",
				Created:     "2024-01-20 16:00:00",
				Updated:     "2024-01-23 10:30:00",
			},
			Source:               "mantis",
			ContactPerson:        "david.brown@company.com",
			SimilarityPercentage: 86.4,
		},
		{
			Issue: models.Issue{
				ID:          203,
				Title:       "Login test cases failing",
				Description: "Regression suite reports failures across the login scenarios",
				Status:      models.StatusOpen,
				Priority:    models.PriorityHigh,
				Assignee:    "Henry Clark",
				Created:     "2024-01-16 09:10:00",
				Updated:     "2024-01-20 17:35:00",
			},
			Source:               "mantis",
			ContactPerson:        "henry.clark@company.com",
			SimilarityPercentage: 83.1,
		},
		{
			Issue: models.Issue{
				ID:          204,
				Title:       "Wrong credentials not handled",
				Description: "Submitting wrong credentials leaves the login form in a loading state",
				Status:      models.StatusOpen,
				Priority:    models.PriorityMedium,
				Assignee:    "Irene Walker",
				Created:     "2024-01-18 14:55:00",
				Updated:     "2024-01-21 12:20:00",
			},
			Source:               "mantis",
			ContactPerson:        "irene.walker@company.com",
			SimilarityPercentage: 79.6,
		},
		{
			Issue: models.Issue{
				ID:          205,
				Title:       "JS error on login screen",
				Description: "Console error thrown by the credential validation script on page load",
				Status:      models.StatusResolved,
				Priority:    models.PriorityLow,
				Assignee:    "Jack Turner",
				Created:     "2024-01-11 08:30:00",
				Updated:     "2024-01-13 16:45:00",
			},
			Source:               "mantis",
			ContactPerson:        "jack.turner@company.com",
			SimilarityPercentage: 72.8,
			Resolution:           "Fixed undefined variable in the validation script",
			ClosedBy:             "Jack Turner",
		},
	}
}

func seedQueryIndexes() map[int]models.QueryIndex {
	return map[int]models.QueryIndex{
		1234: {
			IssueID:    1234,
			QueryCount: 3,
			Queries: []models.IndexedQuery{
				{
					ID:            1,
					QueryText:     "SELECT * FROM user_sessions WHERE user_id = ? AND expires_at > NOW()",
					Description:   "Session lookup during login validation",
					ExecutionTime: 2.45,
					ResultCount:   0,
				},
				{
					ID:            2,
					QueryText:     "SELECT password_hash FROM users WHERE username = ? AND active = 1",
					Description:   "Credential fetch on every login attempt",
					ExecutionTime: 0.12,
					ResultCount:   1,
				},
				{
					ID:            3,
					QueryText:     "UPDATE users SET last_login = NOW() WHERE user_id = ?",
					Description:   "Last-login bookkeeping, blocked by row lock during peak hours",
					ExecutionTime: 4.87,
					ResultCount:   1,
				},
			},
		},
		5678: {
			IssueID:    5678,
			QueryCount: 2,
			Queries: []models.IndexedQuery{
				{
					ID:            1,
					QueryText:     "SHOW PROCESSLIST",
					Description:   "Connection pool saturation check",
					ExecutionTime: 0.03,
					ResultCount:   151,
				},
				{
					ID:            2,
					QueryText:     "SELECT COUNT(*) FROM orders WHERE created_at > DATE_SUB(NOW(), INTERVAL 1 HOUR)",
					Description:   "Unindexed hourly report query holding connections open",
					ExecutionTime: 12.6,
					ResultCount:   1,
				},
			},
		},
	}
}
