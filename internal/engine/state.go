package engine

// State is one position in the authoring conversation. States are named by
// the input they consume: StateAwaitTheme consumes the theme text,
// StateAwaitLevel the level text, and so on. StateDone and StateCancelled are
// terminal; the session is finalized and removed once either is reached.
type State int

const (
	StateIdle State = iota
	StateAwaitStart
	StateAwaitTheme
	StateAwaitLevel
	StateAwaitQuestionDecision
	StateAwaitQuestionText
	StateAwaitAnswerDecision
	StateAwaitAnswerText
	StateAwaitCorrectAnswer
	StateDone
	StateCancelled
)

// Terminal reports whether the session is finished in this state.
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitStart:
		return "await_start"
	case StateAwaitTheme:
		return "await_theme"
	case StateAwaitLevel:
		return "await_level"
	case StateAwaitQuestionDecision:
		return "await_question_decision"
	case StateAwaitQuestionText:
		return "await_question_text"
	case StateAwaitAnswerDecision:
		return "await_answer_decision"
	case StateAwaitAnswerText:
		return "await_answer_text"
	case StateAwaitCorrectAnswer:
		return "await_correct_answer"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
