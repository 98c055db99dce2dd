package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireAdmin проверяет что команду отправил администратор
func (h *Handlers) requireAdmin(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	if update.Message == nil || update.Message.From == nil {
		return false
	}

	telegramID := update.Message.From.ID
	if h.isAdmin != nil && h.isAdmin(telegramID) {
		return true
	}

	h.logger.Warn("Admin command rejected", zap.Int64("telegram_id", telegramID))
	h.answer(ctx, b, update.Message, "❌ Эта команда доступна только администраторам.")
	return false
}

// answer отправляет ответ и логирует если не удалось
func (h *Handlers) answer(ctx context.Context, b *bot.Bot, msg *models.Message, text string) {
	_, err := b.SendMessage(ctx, answerParams(msg, text))
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Error(err),
		)
	}
}
