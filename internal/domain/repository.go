package domain

import "context"

// DraftRepository persists a finished draft snapshot to durable storage. It is
// invoked exactly once per session, at finalization, and receives a complete,
// internally consistent draft.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft *Draft) error
}
