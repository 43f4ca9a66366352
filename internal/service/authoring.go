package service

import (
	"context"

	"quizforge/internal/domain"
	"quizforge/internal/engine"
	"quizforge/internal/logger"
	"quizforge/internal/session"

	"go.uber.org/zap"
)

// AuthoringService drives one authoring conversation per inbound event: it
// resolves the session, runs the engine, and finalizes the session when a
// terminal state is reached.
type AuthoringService interface {
	HandleEvent(ctx context.Context, sessionID string, ev engine.Event) (engine.Prompt, error)
}

type authoringService struct {
	store  *session.Store
	engine *engine.Engine
	repo   domain.DraftRepository
}

// NewAuthoringService creates a new instance of authoringService
func NewAuthoringService(store *session.Store, eng *engine.Engine, repo domain.DraftRepository) AuthoringService {
	return &authoringService{
		store:  store,
		engine: eng,
		repo:   repo,
	}
}

// HandleEvent implements AuthoringService. The returned prompt is always
// renderable, even when an error is returned: a rejected event re-issues the
// current prompt, and a persistence failure still reports the terminal
// outcome to the author.
func (s *authoringService) HandleEvent(ctx context.Context, sessionID string, ev engine.Event) (engine.Prompt, error) {
	sess := s.store.GetOrCreate(sessionID)

	next, draft, prompt, err := s.engine.Step(sess.State, sess.Draft, ev)
	if err != nil {
		// Rejected event: the engine guarantees state and draft are untouched.
		logger.Get().Warn("Event rejected",
			zap.String("session_id", sessionID),
			zap.String("state", sess.State.String()),
			zap.Error(err))
		return prompt, err
	}

	sess.State, sess.Draft = next, draft
	if !next.Terminal() {
		return prompt, nil
	}

	s.store.Remove(sessionID)
	if draft == nil {
		// Cancelled before anything was started; nothing to persist.
		return prompt, nil
	}

	if err := s.repo.SaveDraft(ctx, draft); err != nil {
		// The session is finalized regardless; authoring is not retried.
		logger.Get().Error("Failed to persist draft",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return prompt, domain.NewPersistenceError(err)
	}

	logger.Get().Info("Draft persisted",
		zap.String("session_id", sessionID),
		zap.String("theme", draft.Theme),
		zap.String("level", draft.Level),
		zap.Int("questions", len(draft.Questions)))
	return prompt, nil
}
