package controller

import (
	"context"

	"github.com/Freeeeeet/lectures_bot/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	schedule handlers.ScheduleService,
	isAdmin func(telegramID int64) bool,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: handlers.NewHandlers(schedule, isAdmin, logger),
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, c.handlers.HandleHelp)

	// Аргумент команды идёт после пробела, поэтому совпадение по префиксу
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/lectures", bot.MatchTypePrefix, c.handlers.HandleLectures)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/пары", bot.MatchTypePrefix, c.handlers.HandleLectures)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypePrefix, c.handlers.HandleWeek)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/неделя", bot.MatchTypePrefix, c.handlers.HandleWeek)

	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/update", bot.MatchTypePrefix, c.handlers.HandleUpdate)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота.
// Кириллические команды Telegram в меню не принимает, они работают только текстом.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "lectures", Description: "📅 Пары на день (сегодня, завтра, среда, 15.09)"},
		{Command: "week", Description: "🗓 Пары на неделю (числитель/знаменатель)"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
