package handlers

import (
	"context"

	"go.uber.org/zap"
)

// ScheduleService то, что обработчикам нужно от сервиса расписания
type ScheduleService interface {
	Lectures(expression string) string
	WeekLectures(label string) string
	Update(ctx context.Context) error
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	schedule ScheduleService
	isAdmin  func(telegramID int64) bool
	logger   *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(schedule ScheduleService, isAdmin func(telegramID int64) bool, logger *zap.Logger) *Handlers {
	return &Handlers{
		schedule: schedule,
		isAdmin:  isAdmin,
		logger:   logger,
	}
}
