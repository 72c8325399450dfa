package bot

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/eldtechnologies/anonchat/internal/store"
)

// Bot is the Telegram front-end. It mirrors the HTTP API: every
// command maps onto the same room store operations.
type Bot struct {
	api       *tgbotapi.BotAPI
	responder *Responder
	logger    zerolog.Logger
}

// New authenticates against the Telegram API with the given token.
func New(token string, st store.RoomStore, sim *store.Simulator, logger zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		responder: &Responder{Store: st, Sim: sim},
		logger:    logger.With().Str("component", "bot").Logger(),
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info().Msg("bot stopped")
			return
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	// Requester identity is the platform's numeric user id as a string.
	userID := strconv.FormatInt(msg.From.ID, 10)
	userName := msg.From.UserName
	if userName == "" {
		userName = msg.From.FirstName
	}

	reply := b.responder.Handle(userID, userName, msg.Command(), msg.CommandArguments())
	if reply == "" {
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		b.logger.Error().Err(err).Str("command", msg.Command()).Msg("failed to send reply")
	}
}
