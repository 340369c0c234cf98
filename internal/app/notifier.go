package app

import (
	"strings"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers text to the configured chat.
// Send failures are logged and never returned: a lost message must not stop polling.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("chat_id", chatID),
	}
}

// Notify sends text once. Blank text is skipped.
func (n *Notifier) Notify(text string) {
	if strings.TrimSpace(text) == "" {
		n.logger.Debug("Skipping empty notification")
		return
	}
	if err := n.client.SendMessage(n.chatID, text); err != nil {
		n.logger.WithError(err).Error("Failed to send message to Telegram")
		return
	}
	n.logger.Info("Message sent to Telegram")
}
