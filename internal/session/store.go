package session

import (
	"sync"
	"time"

	"github.com/maheshrc27/scheduling-console/internal/console"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Workspace is the page state of one browser. Handlers hold Lock for the
// whole request so two tabs of the same browser do not interleave.
type Workspace struct {
	sync.Mutex

	ID    string
	Home  *console.HomePage
	Admin *console.AdminPage

	lastSeen time.Time
}

type Factory func() (*console.HomePage, *console.AdminPage)

type Store struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	factory    Factory
	now        func() time.Time
}

func NewStore(factory Factory) *Store {
	return &Store{
		workspaces: make(map[string]*Workspace),
		factory:    factory,
		now:        time.Now,
	}
}

// Get returns the workspace for id and marks it as used.
func (s *Store) Get(id string) (*Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.workspaces[id]
	if ok {
		ws.lastSeen = s.now()
	}
	return ws, ok
}

func (s *Store) Create() (*Workspace, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	home, admin := s.factory()
	ws := &Workspace{ID: id, Home: home, Admin: admin}

	s.mu.Lock()
	defer s.mu.Unlock()
	ws.lastSeen = s.now()
	s.workspaces[id] = ws
	return ws, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}

// Sweep drops workspaces idle for longer than ttl and returns how many
// were removed.
func (s *Store) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, ws := range s.workspaces {
		if ws.lastSeen.Before(cutoff) {
			delete(s.workspaces, id)
			removed++
		}
	}
	return removed
}
