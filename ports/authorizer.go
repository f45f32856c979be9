package ports

import "context"

// Authorizer decides whether a caller holds the authority to create
// auctions. How authority tokens are issued or revoked is an adapter
// concern; the engine only asks the yes/no question.
type Authorizer interface {
	IsAuthorized(ctx context.Context, caller, token string) (bool, error)
}
