package menu

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

const (
	BtnContinue = "▶️ Продолжить"
	BtnStatus   = "📊 Мой прогресс"
)

// Main — постоянная клавиатура курса: кнопка следующего урока и прогресс.
func Main() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnContinue),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnStatus),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
