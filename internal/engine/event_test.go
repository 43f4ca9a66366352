package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data string
		want Event
	}{
		{"begin_test", ChoiceEvent(ChoiceBeginTest)},
		{"finish_setup", ChoiceEvent(ChoiceFinishSetup)},
		{"add_question", ChoiceEvent(ChoiceAddQuestion)},
		{"finish_questions", ChoiceEvent(ChoiceFinishQuestions)},
		{"add_answer", ChoiceEvent(ChoiceAddAnswer)},
		{"finish_answers", ChoiceEvent(ChoiceFinishAnswers)},
		{"cancel", CancelEvent()},
		{"select_answer:1", SelectAnswerEvent(1)},
		{"select_answer:12", SelectAnswerEvent(12)},
		{"select_answer:0", ChoiceEvent(ChoiceUnknown)},
		{"select_answer:-2", ChoiceEvent(ChoiceUnknown)},
		{"select_answer:abc", ChoiceEvent(ChoiceUnknown)},
		{"select_answer:", ChoiceEvent(ChoiceUnknown)},
		{"", ChoiceEvent(ChoiceUnknown)},
		{"something_else", ChoiceEvent(ChoiceUnknown)},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCallback(tt.data))
		})
	}
}

func TestSelectAnswerDataRoundTrip(t *testing.T) {
	for k := 1; k <= 5; k++ {
		assert.Equal(t, SelectAnswerEvent(k), ParseCallback(selectAnswerData(k)))
	}
}
