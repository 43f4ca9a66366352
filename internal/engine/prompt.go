package engine

import "quizforge/internal/domain"

// Prompt is the outgoing descriptor the renderer turns into a message.
// Options, when present, are rendered as buttons in order.
type Prompt struct {
	Text    string
	Options []Option
}

// Option is one selectable button: a human label plus the callback data the
// transport sends back when it is pressed.
type Option struct {
	Label string
	Data  string
}

func promptWelcome() Prompt {
	return Prompt{
		Text: "This bot builds multiple-choice tests. Create a new one?",
		Options: []Option{
			{Label: "Create a new test", Data: dataBeginTest},
			{Label: "Done", Data: dataFinishSetup},
		},
	}
}

func promptTheme() Prompt {
	return Prompt{Text: "What is the theme?"}
}

func promptLevel() Prompt {
	return Prompt{Text: "What is the level?"}
}

func promptQuestionDecision() Prompt {
	return Prompt{
		Text: "Add a new question?",
		Options: []Option{
			{Label: "Add new question", Data: dataAddQuestion},
			{Label: "Done", Data: dataFinishQuestions},
		},
	}
}

func promptQuestionText() Prompt {
	return Prompt{Text: "Enter the question:"}
}

func promptAnswerDecision() Prompt {
	return Prompt{
		Text: "Add a new answer?",
		Options: []Option{
			{Label: "Add new answer", Data: dataAddAnswer},
			{Label: "Done", Data: dataFinishAnswers},
		},
	}
}

func promptAnswerText() Prompt {
	return Prompt{Text: "Enter the answer:"}
}

// promptCorrectAnswer lists one option per current answer, in answer order,
// each labeled with the answer's literal text and tagged with its 1-based
// position.
func promptCorrectAnswer(q *domain.Question) Prompt {
	options := make([]Option, 0, len(q.Answers))
	for i, answer := range q.Answers {
		options = append(options, Option{Label: answer, Data: selectAnswerData(i + 1)})
	}
	return Prompt{Text: "Which answer is correct?", Options: options}
}

func promptDone(questions int) Prompt {
	if questions == 0 {
		return Prompt{Text: "Test saved without questions. Send /start to build another."}
	}
	return Prompt{Text: "Test saved. Send /start to build another."}
}

func promptCancelled() Prompt {
	return Prompt{Text: "Authoring cancelled. Send /start to begin again."}
}
