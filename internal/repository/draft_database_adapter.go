package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"

	"github.com/jmoiron/sqlx"
)

// DraftDatabaseAdapter implements domain.DraftRepository using sqlx.DB
type DraftDatabaseAdapter struct {
	db *sqlx.DB
}

// NewDraftDatabaseAdapter creates a new instance of DraftDatabaseAdapter
func NewDraftDatabaseAdapter(db *sqlx.DB) domain.DraftRepository {
	return &DraftDatabaseAdapter{db: db}
}

// SaveDraft implements domain.DraftRepository. The whole snapshot is written
// in one transaction so a finished test is never stored half-complete.
func (a *DraftDatabaseAdapter) SaveDraft(ctx context.Context, draft *domain.Draft) error {
	if draft == nil {
		return fmt.Errorf("cannot save nil draft")
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	test := models.Test{
		ID:        util.NewULID(),
		Theme:     draft.Theme,
		Level:     draft.Level,
		CreatedAt: now,
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tests (id, theme, level, created_at) VALUES (?, ?, ?, ?)`,
		test.ID, test.Theme, test.Level, test.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert test: %w", err)
	}

	for i, q := range draft.Questions {
		question := models.Question{
			ID:            util.NewULID(),
			TestID:        test.ID,
			Position:      i,
			Text:          strings.Join(q.Text, " "),
			Answers:       models.StringSlice(q.Answers),
			CorrectAnswer: q.CorrectAnswer,
			CreatedAt:     now,
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO questions (id, test_id, position, text, answers, correct_answer, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			question.ID, question.TestID, question.Position, question.Text,
			question.Answers, question.CorrectAnswer, question.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert question %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
