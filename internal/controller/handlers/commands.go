package handlers

import (
	"context"
	"errors"

	"github.com/Freeeeeet/lectures_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 Справка по командам:\n\n" +
	"/lectures [день] или /пары [день] - пары на день\n" +
	"   день: пусто (сегодня), завтра, понедельник..воскресенье, 15.09\n" +
	"/week [неделя] или /неделя [неделя] - пары на всю неделю\n" +
	"   неделя: пусто (текущая), числитель, знаменатель, еженедельно\n" +
	"/help - Показать эту справку"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.answer(ctx, b, update.Message, "👋 Привет! Я подскажу расписание пар.\n\n"+helpText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.answer(ctx, b, update.Message, helpText)
}

// HandleLectures обрабатывает /lectures и /пары
func (h *Handlers) HandleLectures(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	day := commandArgument(update.Message.Text)
	h.logger.Info("Lectures requested",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("day", day))

	h.answer(ctx, b, update.Message, h.schedule.Lectures(day))
}

// HandleWeek обрабатывает /week и /неделя
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.answer(ctx, b, update.Message, h.schedule.WeekLectures(commandArgument(update.Message.Text)))
}

// HandleUpdate обрабатывает /update - перезагрузка расписания
func (h *Handlers) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	h.answer(ctx, b, update.Message, "🔄 Обновляю расписание...")

	err := h.schedule.Update(ctx)
	switch {
	case err == nil:
		h.answer(ctx, b, update.Message, "✅ Расписание обновлено")
	case errors.Is(err, service.ErrRefreshInProgress):
		h.answer(ctx, b, update.Message, "⏳ Обновление уже идёт")
	default:
		h.logger.Error("Manual schedule update failed", zap.Error(err))
		h.answer(ctx, b, update.Message, "❌ Не удалось обновить расписание, оставлено текущее")
	}
}
