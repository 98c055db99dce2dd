package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher обновляет документ расписания
type Refresher interface {
	Update(ctx context.Context) error
}

// Scheduler периодически обновляет расписание по cron-выражению.
// Запуск пропускается, пока предыдущий ещё идёт.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	logger    *zap.Logger
}

// NewScheduler создаёт планировщик с заданием обновления по cron-выражению
func NewScheduler(ctx context.Context, spec string, refresher Refresher, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		refresher: refresher,
		logger:    logger,
	}

	cronLog := cronLogger{logger: logger.Named("cron")}
	s.cron = cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		),
	)

	if _, err := s.cron.AddFunc(spec, func() { s.refresh(ctx) }); err != nil {
		return nil, fmt.Errorf("parse refresh cron %q: %w", spec, err)
	}

	return s, nil
}

// Start запускает фоновые задачи
func (s *Scheduler) Start() {
	s.logger.Info("Starting schedule refresh job")
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт текущий запуск
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping schedule refresh job")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refresh(ctx context.Context) {
	s.logger.Info("Starting scheduled schedule refresh")

	if err := s.refresher.Update(ctx); err != nil {
		s.logger.Error("Failed to refresh schedule", zap.Error(err))
		return
	}

	s.logger.Info("Scheduled refresh completed successfully")
}

// cronLogger пишет сообщения cron в zap: служебные события в debug,
// пропуск запуска в warn, паники заданий в error
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	if msg == "skip" {
		l.logger.Sugar().Warnw("Refresh run skipped, previous one still running", keysAndValues...)
		return
	}
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
