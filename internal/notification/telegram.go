package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes ops alerts to a channel watched by the on-call
// rotation. These alerts cover conditions end users must never see directly:
// failed persistence and confirms arriving without a matching hold.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, ops alerts disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPersistenceFailure(ctx context.Context, eventID, operation string, err error) {
	text := fmt.Sprintf(
		"*Capacity state save failed*\n\nEvent: %s\nOperation: %s\nError: %s\n\nThe operation was rejected; the caller should retry with backoff.",
		eventID, operation, err.Error(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrphanConfirm(ctx context.Context, eventID, userID, bookingID string) {
	text := fmt.Sprintf(
		"*Confirm without matching hold*\n\nEvent: %s\nUser: %s\nBooking: %s\n\nconfirmed\\_count was incremented without a prior reserve. Check the payment workflow for this booking.",
		eventID, userID, bookingID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("ops alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("ops alert skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send ops alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
