package telegram

// Client defines an interface for sending messages via a Telegram bot.
// This keeps the polling logic independent of the bot library.
type Client interface {
	SendMessage(chatID int64, text string) error
}
