package authorizer

import (
	"context"
	"sync"

	"github.com/layer-3/gavel/ports"
)

// StaticAuthorizer is an in-memory implementation of the Authorizer
// interface holding a fixed token-to-holder map. Primarily intended for
// testing.
type StaticAuthorizer struct {
	tokens map[string]string
	mu     sync.RWMutex
}

// NewStaticAuthorizer creates a static authorizer with no tokens
func NewStaticAuthorizer() *StaticAuthorizer {
	return &StaticAuthorizer{
		tokens: make(map[string]string),
	}
}

// Grant registers a token as held by the given identity
func (a *StaticAuthorizer) Grant(holder, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tokens[token] = holder
}

// IsAuthorized reports whether the token was granted to the caller
func (a *StaticAuthorizer) IsAuthorized(ctx context.Context, caller, token string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	holder, ok := a.tokens[token]
	return ok && holder == caller, nil
}

var _ ports.Authorizer = (*StaticAuthorizer)(nil)
