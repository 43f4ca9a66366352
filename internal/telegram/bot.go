package telegram

import (
	"context"
	"strconv"

	"quizforge/internal/engine"
	"quizforge/internal/logger"
	"quizforge/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot bridges Telegram updates to the authoring service and renders the
// prompts it returns. All decision logic lives behind the service; this layer
// only translates events in and prompts out.
type Bot struct {
	api         *tgbotapi.BotAPI
	authoring   service.AuthoringService
	pollTimeout int
}

func NewBot(token string, pollTimeout int, authoring service.AuthoringService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		authoring:   authoring,
		pollTimeout: pollTimeout,
	}, nil
}

// Run consumes updates until ctx is cancelled. Inbound events are processed
// one at a time, so each session's events are strictly ordered.
func (b *Bot) Run(ctx context.Context) {
	logger.Get().Info("Authorized on account", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			switch {
			case update.Message != nil:
				b.handleMessage(ctx, update.Message)
			case update.CallbackQuery != nil:
				b.handleCallback(ctx, update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	var ev engine.Event
	switch msg.Command() {
	case "start":
		ev = engine.StartEvent()
	case "cancel":
		ev = engine.CancelEvent()
	default:
		ev = engine.TextEvent(msg.Text)
	}
	b.dispatch(ctx, msg.Chat.ID, ev)
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	// Acknowledge first so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logger.Get().Warn("Error answering callback", zap.Error(err))
	}
	b.dispatch(ctx, callback.Message.Chat.ID, engine.ParseCallback(callback.Data))
}

func (b *Bot) dispatch(ctx context.Context, chatID int64, ev engine.Event) {
	sessionID := strconv.FormatInt(chatID, 10)

	prompt, err := b.authoring.HandleEvent(ctx, sessionID, ev)
	if err != nil {
		// Recoverable and scoped to one session; the prompt still tells the
		// author where they are.
		logger.Get().Warn("Event not applied",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
	b.send(chatID, prompt)
}

func (b *Bot) send(chatID int64, prompt engine.Prompt) {
	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	if len(prompt.Options) > 0 {
		msg.ReplyMarkup = keyboard(prompt.Options)
	}
	if _, err := b.api.Send(msg); err != nil {
		logger.Get().Error("Error sending message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// keyboard renders options as one inline button per row, preserving the
// prompt's order.
func keyboard(options []engine.Option) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, opt := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.Data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
