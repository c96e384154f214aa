package jira

import (
	"context"
	"fmt"
	"sync"
)

// Static records issues instead of sending them.
type Static struct {
	mu      sync.Mutex
	apiURL  string
	Created []any
}

var _ Creator = &Static{}

func (s *Static) CreateIssue(_ context.Context, issue any) (*CreatedIssue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Created = append(s.Created, issue)
	id := 10000 + len(s.Created)

	return &CreatedIssue{
		ID:   fmt.Sprintf("%d", id),
		Key:  fmt.Sprintf("DS-%d", len(s.Created)),
		Self: fmt.Sprintf("%s/issue/%d", s.apiURL, id),
	}, nil
}

func NewStatic(apiURL string) *Static {
	return &Static{
		apiURL: apiURL,
	}
}
