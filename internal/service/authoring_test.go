package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/engine"
	"quizforge/internal/logger"
	"quizforge/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) SaveDraft(ctx context.Context, draft *domain.Draft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func newService(repo domain.DraftRepository) (AuthoringService, *session.Store) {
	store := session.NewStore()
	return NewAuthoringService(store, engine.New(), repo), store
}

// drive pushes a sequence of events through the service for one session.
func drive(t *testing.T, svc AuthoringService, id string, events ...engine.Event) engine.Prompt {
	t.Helper()
	var prompt engine.Prompt
	for _, ev := range events {
		var err error
		prompt, err = svc.HandleEvent(context.Background(), id, ev)
		require.NoError(t, err)
	}
	return prompt
}

func authoringEvents() []engine.Event {
	return []engine.Event{
		engine.StartEvent(),
		engine.ChoiceEvent(engine.ChoiceBeginTest),
		engine.TextEvent("Colors"),
		engine.TextEvent("A1"),
		engine.ChoiceEvent(engine.ChoiceAddQuestion),
		engine.TextEvent("Sky is Answer color"),
		engine.TextEvent("Blue"),
		engine.ChoiceEvent(engine.ChoiceFinishAnswers),
		engine.SelectAnswerEvent(1),
	}
}

func TestHandleEvent_PersistsOnFinish(t *testing.T) {
	repo := new(MockDraftRepository)
	svc, store := newService(repo)

	var saved *domain.Draft
	repo.On("SaveDraft", mock.Anything, mock.AnythingOfType("*domain.Draft")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Draft) }).
		Return(nil).Once()

	events := append(authoringEvents(), engine.ChoiceEvent(engine.ChoiceFinishQuestions))
	drive(t, svc, "chat-1", events...)

	repo.AssertExpectations(t)
	require.NotNil(t, saved)
	assert.Equal(t, "Colors", saved.Theme)
	assert.Equal(t, "A1", saved.Level)
	require.Len(t, saved.Questions, 1)
	assert.Equal(t, []string{"True", "False"}, saved.Questions[0].Answers)
	assert.Equal(t, "True", saved.Questions[0].CorrectAnswer)

	// Finished sessions are removed from the store.
	_, err := store.Get("chat-1")
	assert.Error(t, err)
}

func TestHandleEvent_CancelMidLoopPersistsEmptyQuestions(t *testing.T) {
	repo := new(MockDraftRepository)
	svc, store := newService(repo)

	var saved *domain.Draft
	repo.On("SaveDraft", mock.Anything, mock.AnythingOfType("*domain.Draft")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Draft) }).
		Return(nil).Once()

	// Cancel in the middle of the answer loop with zero completed questions.
	drive(t, svc, "chat-2",
		engine.StartEvent(),
		engine.ChoiceEvent(engine.ChoiceBeginTest),
		engine.TextEvent("Colors"),
		engine.TextEvent("A1"),
		engine.ChoiceEvent(engine.ChoiceAddQuestion),
		engine.TextEvent("Sky is Answer color"),
		engine.TextEvent("Blue"),
		engine.CancelEvent(),
	)

	repo.AssertExpectations(t)
	require.NotNil(t, saved)
	assert.Equal(t, "Colors", saved.Theme)
	// The in-progress question was abandoned.
	assert.Empty(t, saved.Questions)
	assert.Equal(t, 0, store.Len())
}

func TestHandleEvent_CancelBeforeStartSkipsPersistence(t *testing.T) {
	repo := new(MockDraftRepository)
	svc, store := newService(repo)

	prompt, err := svc.HandleEvent(context.Background(), "chat-3", engine.CancelEvent())
	require.NoError(t, err)
	assert.NotEmpty(t, prompt.Text)

	// No draft was ever initialized, so nothing is written.
	repo.AssertNotCalled(t, "SaveDraft", mock.Anything, mock.Anything)
	assert.Equal(t, 0, store.Len())
}

func TestHandleEvent_PersistenceFailureStillFinalizes(t *testing.T) {
	repo := new(MockDraftRepository)
	svc, store := newService(repo)

	repo.On("SaveDraft", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	drive(t, svc, "chat-4", authoringEvents()...)
	prompt, err := svc.HandleEvent(context.Background(), "chat-4", engine.ChoiceEvent(engine.ChoiceFinishQuestions))
	require.Error(t, err)
	assert.NotEmpty(t, prompt.Text)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrPersistence, domainErr.Code)

	// The session is removed even though the write failed.
	assert.Equal(t, 0, store.Len())
}

func TestHandleEvent_OutOfRangeSelectionKeepsSession(t *testing.T) {
	repo := new(MockDraftRepository)
	svc, store := newService(repo)

	drive(t, svc, "chat-5", authoringEvents()[:8]...) // stop at answer selection

	prompt, err := svc.HandleEvent(context.Background(), "chat-5", engine.SelectAnswerEvent(7))
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrAnswerOutOfRange, domainErr.Code)

	// Identical re-prompt; the session stays live and a valid selection
	// still works.
	assert.Equal(t, "Which answer is correct?", prompt.Text)
	sess, err := store.Get("chat-5")
	require.NoError(t, err)
	assert.Equal(t, engine.StateAwaitCorrectAnswer, sess.State)

	_, err = svc.HandleEvent(context.Background(), "chat-5", engine.SelectAnswerEvent(2))
	require.NoError(t, err)
	assert.Equal(t, "False", sess.Draft.Questions[0].CorrectAnswer)
}

func TestHandleEvent_SessionsAreIndependent(t *testing.T) {
	repo := new(MockDraftRepository)
	svc, _ := newService(repo)

	drive(t, svc, "chat-a",
		engine.StartEvent(),
		engine.ChoiceEvent(engine.ChoiceBeginTest),
		engine.TextEvent("Theme A"),
	)
	prompt := drive(t, svc, "chat-b", engine.StartEvent())

	// chat-b is still at the start menu while chat-a awaits its level.
	assert.Len(t, prompt.Options, 2)
	promptA := drive(t, svc, "chat-a", engine.TextEvent("B1"))
	assert.Equal(t, "Add a new question?", promptA.Text)
}
