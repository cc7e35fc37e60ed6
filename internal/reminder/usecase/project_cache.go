package usecase

import (
	"sync"

	"teamhub-backend/internal/reminder/repository"
)

// DefaultProjectCache memoizes the hub's default project id. It is an
// explicit injected component with explicit invalidation rather than
// package-level state, so callers control its lifetime.
type DefaultProjectCache struct {
	directory repository.ProjectDirectory

	mu     sync.Mutex
	cached string
}

// NewDefaultProjectCache creates a cache over the given directory
func NewDefaultProjectCache(directory repository.ProjectDirectory) *DefaultProjectCache {
	return &DefaultProjectCache{directory: directory}
}

// Get returns the default project id, looking it up on first use.
func (c *DefaultProjectCache) Get() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != "" {
		return c.cached, nil
	}

	id, err := c.directory.DefaultProjectID()
	if err != nil {
		return "", err
	}
	c.cached = id
	return id, nil
}

// Invalidate drops the cached id; the next Get looks it up again.
func (c *DefaultProjectCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = ""
}
