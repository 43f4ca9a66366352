package domain

import "strings"

// Answer set backfilled by NormalizeAnswers when the author supplied fewer
// than two answers.
const (
	TrueAnswer  = "True"
	FalseAnswer = "False"
)

// Draft is the accumulating quiz for one authoring session. It is owned
// exclusively by its session and mutated only by the engine.
type Draft struct {
	Theme     string
	Level     string
	Questions []*Question
	// Cursor is the index of the question currently under construction.
	// It equals the number of questions whose correct answer is finalized.
	Cursor int
}

// Question is one multiple-choice question under construction. Text holds the
// author's literal whitespace-delimited tokens; the "Answer" placeholder
// convention is stored verbatim, not interpreted. Answers keeps insertion
// order, which is the presentation order the correct-answer index refers to.
type Question struct {
	Text          []string
	Answers       []string
	CorrectAnswer string
}

// NewDraft creates an empty draft: no theme, no level, no questions.
func NewDraft() *Draft {
	return &Draft{}
}

// Current returns the question under construction, or nil when the cursor
// points past the finalized questions.
func (d *Draft) Current() *Question {
	if d.Cursor >= len(d.Questions) {
		return nil
	}
	return d.Questions[d.Cursor]
}

func (d *Draft) SetTheme(theme string) { d.Theme = theme }

func (d *Draft) SetLevel(level string) { d.Level = level }

// BeginQuestion appends an empty question at the cursor. It is a no-op when a
// question is already in progress, so a stale button press cannot create a
// duplicate.
func (d *Draft) BeginQuestion() *Question {
	if q := d.Current(); q != nil {
		return q
	}
	q := &Question{}
	d.Questions = append(d.Questions, q)
	return q
}

// SelectAnswer finalizes the current question with the 1-based index k into
// its answer list and advances the cursor. The draft is untouched when k is
// out of range or no question is in progress.
func (d *Draft) SelectAnswer(k int) error {
	q := d.Current()
	if q == nil {
		return NewInvalidInputError("no question in progress")
	}
	if k < 1 || k > len(q.Answers) {
		return NewAnswerOutOfRangeError(k, len(q.Answers))
	}
	q.CorrectAnswer = q.Answers[k-1]
	d.Cursor++
	return nil
}

// AbandonCurrent drops the question under construction, if any, leaving only
// finalized questions. Used when a session is cancelled mid-loop.
func (d *Draft) AbandonCurrent() {
	d.Questions = d.Questions[:d.Cursor]
}

// Finalized reports how many questions have their correct answer set.
func (d *Draft) Finalized() int {
	return d.Cursor
}

// SetText stores the question body as its whitespace-delimited tokens.
func (q *Question) SetText(text string) {
	q.Text = strings.Fields(text)
}

func (q *Question) AddAnswer(answer string) {
	q.Answers = append(q.Answers, answer)
}

// NormalizeAnswers enforces the minimum-answers rule at the answer-loop exit:
// a question with fewer than two answers gets exactly ["True", "False"],
// discarding any single partially-entered answer. Reapplying to an already
// normalized question changes nothing.
func NormalizeAnswers(q *Question) {
	if len(q.Answers) < 2 {
		q.Answers = []string{TrueAnswer, FalseAnswer}
	}
}
