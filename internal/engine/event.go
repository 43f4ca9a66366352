package engine

import (
	"strconv"
	"strings"
)

// EventKind discriminates the inbound event shapes the engine accepts.
type EventKind int

const (
	EventStart EventKind = iota
	EventCancel
	EventText
	EventChoice
)

// Choice is the closed set of discrete selections a previously rendered
// prompt can produce. The engine only ever branches on these values; raw
// callback data is mapped onto them at the transport boundary.
type Choice int

const (
	ChoiceUnknown Choice = iota
	ChoiceBeginTest
	ChoiceFinishSetup
	ChoiceAddQuestion
	ChoiceFinishQuestions
	ChoiceAddAnswer
	ChoiceFinishAnswers
	ChoiceSelectAnswer
)

// Event is one inbound user action for a session.
type Event struct {
	Kind   EventKind
	Text   string // payload for EventText
	Choice Choice // payload for EventChoice
	Answer int    // 1-based answer index for ChoiceSelectAnswer
}

func StartEvent() Event  { return Event{Kind: EventStart} }
func CancelEvent() Event { return Event{Kind: EventCancel} }

func TextEvent(text string) Event { return Event{Kind: EventText, Text: text} }

func ChoiceEvent(c Choice) Event { return Event{Kind: EventChoice, Choice: c} }

func SelectAnswerEvent(k int) Event {
	return Event{Kind: EventChoice, Choice: ChoiceSelectAnswer, Answer: k}
}

// Callback data rendered into prompt options and parsed back from the
// transport. select_answer carries its 1-based index after the colon.
const (
	dataBeginTest          = "begin_test"
	dataFinishSetup        = "finish_setup"
	dataAddQuestion        = "add_question"
	dataFinishQuestions    = "finish_questions"
	dataAddAnswer          = "add_answer"
	dataFinishAnswers      = "finish_answers"
	dataCancel             = "cancel"
	dataSelectAnswerPrefix = "select_answer:"
)

func selectAnswerData(k int) string {
	return dataSelectAnswerPrefix + strconv.Itoa(k)
}

// ParseCallback maps raw callback-query data onto an Event. Malformed data
// yields ChoiceUnknown, which no state consumes, so the current prompt is
// simply re-issued.
func ParseCallback(data string) Event {
	switch data {
	case dataBeginTest:
		return ChoiceEvent(ChoiceBeginTest)
	case dataFinishSetup:
		return ChoiceEvent(ChoiceFinishSetup)
	case dataAddQuestion:
		return ChoiceEvent(ChoiceAddQuestion)
	case dataFinishQuestions:
		return ChoiceEvent(ChoiceFinishQuestions)
	case dataAddAnswer:
		return ChoiceEvent(ChoiceAddAnswer)
	case dataFinishAnswers:
		return ChoiceEvent(ChoiceFinishAnswers)
	case dataCancel:
		return CancelEvent()
	}
	if suffix, ok := strings.CutPrefix(data, dataSelectAnswerPrefix); ok {
		if k, err := strconv.Atoi(suffix); err == nil && k > 0 {
			return SelectAnswerEvent(k)
		}
	}
	return ChoiceEvent(ChoiceUnknown)
}
