package engine

import "quizforge/internal/domain"

// Engine is the decision function of the authoring conversation: given the
// current state, the session's draft and one inbound event it computes the
// next state, the (possibly mutated) draft and the next prompt. It performs
// no I/O, and validation always precedes mutation, so a rejected event leaves
// the draft untouched.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Step computes one transition. Events that the current state does not
// recognize cause no transition and no mutation; the current prompt is
// re-issued. Cancel is valid from every state and abandons any in-progress
// question.
func (e *Engine) Step(s State, d *domain.Draft, ev Event) (State, *domain.Draft, Prompt, error) {
	if ev.Kind == EventCancel {
		if d != nil {
			// An in-progress question is abandoned, not persisted.
			d.AbandonCurrent()
		}
		return StateCancelled, d, promptCancelled(), nil
	}

	switch s {
	case StateIdle:
		// Any first event is an implicit fresh start; the transport does not
		// guarantee a /start before arbitrary resumption.
		return StateAwaitStart, domain.NewDraft(), promptWelcome(), nil

	case StateAwaitStart:
		if ev.Kind == EventChoice {
			switch ev.Choice {
			case ChoiceBeginTest:
				return StateAwaitTheme, d, promptTheme(), nil
			case ChoiceFinishSetup:
				return StateDone, d, promptDone(d.Finalized()), nil
			}
		}

	case StateAwaitTheme:
		if ev.Kind == EventText {
			d.SetTheme(ev.Text)
			return StateAwaitLevel, d, promptLevel(), nil
		}

	case StateAwaitLevel:
		if ev.Kind == EventText {
			d.SetLevel(ev.Text)
			return StateAwaitQuestionDecision, d, promptQuestionDecision(), nil
		}

	case StateAwaitQuestionDecision:
		if ev.Kind == EventChoice {
			switch ev.Choice {
			case ChoiceAddQuestion:
				d.BeginQuestion()
				return StateAwaitQuestionText, d, promptQuestionText(), nil
			case ChoiceFinishQuestions:
				return StateDone, d, promptDone(d.Finalized()), nil
			}
		}

	case StateAwaitQuestionText:
		if ev.Kind == EventText {
			d.Current().SetText(ev.Text)
			return StateAwaitAnswerDecision, d, promptAnswerDecision(), nil
		}

	case StateAwaitAnswerDecision:
		switch ev.Kind {
		case EventText:
			// The author typed an answer instead of pressing a button.
			d.Current().AddAnswer(ev.Text)
			return StateAwaitAnswerDecision, d, promptAnswerDecision(), nil
		case EventChoice:
			switch ev.Choice {
			case ChoiceAddAnswer:
				return StateAwaitAnswerText, d, promptAnswerText(), nil
			case ChoiceFinishAnswers:
				domain.NormalizeAnswers(d.Current())
				return StateAwaitCorrectAnswer, d, promptCorrectAnswer(d.Current()), nil
			}
		}

	case StateAwaitAnswerText:
		if ev.Kind == EventText {
			d.Current().AddAnswer(ev.Text)
			return StateAwaitAnswerDecision, d, promptAnswerDecision(), nil
		}

	case StateAwaitCorrectAnswer:
		if ev.Kind == EventChoice && ev.Choice == ChoiceSelectAnswer {
			if err := d.SelectAnswer(ev.Answer); err != nil {
				return s, d, e.promptFor(s, d), err
			}
			return StateAwaitQuestionDecision, d, promptQuestionDecision(), nil
		}
	}

	return s, d, e.promptFor(s, d), nil
}

// promptFor re-issues the prompt that led into state s.
func (e *Engine) promptFor(s State, d *domain.Draft) Prompt {
	switch s {
	case StateAwaitStart:
		return promptWelcome()
	case StateAwaitTheme:
		return promptTheme()
	case StateAwaitLevel:
		return promptLevel()
	case StateAwaitQuestionDecision:
		return promptQuestionDecision()
	case StateAwaitQuestionText:
		return promptQuestionText()
	case StateAwaitAnswerDecision:
		return promptAnswerDecision()
	case StateAwaitAnswerText:
		return promptAnswerText()
	case StateAwaitCorrectAnswer:
		return promptCorrectAnswer(d.Current())
	case StateDone:
		return promptDone(d.Finalized())
	case StateCancelled:
		return promptCancelled()
	default:
		return promptWelcome()
	}
}
