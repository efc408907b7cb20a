package triaging

import (
	"sync"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/domain"
)

type entry struct {
	workspace *domain.TriageWorkspace
	lastUsed  time.Time
}

// WorkspaceStore mantém um TriageWorkspace por sessão
type WorkspaceStore struct {
	mu         sync.Mutex
	workspaces map[string]*entry
	now        func() time.Time
}

func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{
		workspaces: make(map[string]*entry),
		now:        time.Now,
	}
}

// Get devolve o workspace da sessão, criando-o na primeira chamada
func (s *WorkspaceStore) Get(sessionID string) *domain.TriageWorkspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.workspaces[sessionID]
	if !ok {
		e = &entry{workspace: domain.NewTriageWorkspace()}
		s.workspaces[sessionID] = e
	}
	e.lastUsed = s.now()

	return e.workspace
}

func (s *WorkspaceStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.workspaces, sessionID)
}

// Evict remove workspaces sem uso desde antes de olderThan
func (s *WorkspaceStore) Evict(olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.workspaces {
		if e.lastUsed.Before(olderThan) {
			delete(s.workspaces, id)
			removed++
		}
	}
	return removed
}

func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}
